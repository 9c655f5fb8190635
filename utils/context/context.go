package context

import (
	"context"

	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
)

// WithSession embeds the authenticated operator session into ctx.
func WithSession(ctx context.Context, session *model.OperatorSession) context.Context {
	return context.WithValue(ctx, constant.SessionKey, session)
}

func GetSession(ctx context.Context) (*model.OperatorSession, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*model.OperatorSession)
	return s, ok && s != nil
}
