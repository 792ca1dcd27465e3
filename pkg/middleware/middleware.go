package middleware

import "context"

// RequestFunc — сигнатура исходящего запроса BaseClient.
type RequestFunc func(ctx context.Context, method, endpoint string, requestBody, response interface{}) error

type Middleware func(next RequestFunc) RequestFunc

// Chain оборачивает fn в цепочку middleware; первый элемент становится внешним.
func Chain(fn RequestFunc, mws ...Middleware) RequestFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		fn = mws[i](fn)
	}
	return fn
}
