package api

import (
	"context"
	"errors"
)

type keyType string

const adminEmailKey keyType = "adminEmail"

// ctxWithAdminEmail marks the request as an authenticated admin session.
func ctxWithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// ctxGetAdminEmail retrieves the authenticated admin email from the context
func ctxGetAdminEmail(ctx context.Context) (string, error) {
	value := ctx.Value(adminEmailKey)
	if value == nil {
		return "", errors.New("admin email not found in context")
	}
	email, ok := value.(string)
	if !ok {
		return "", errors.New("admin email is not of type `string`")
	}
	return email, nil
}
