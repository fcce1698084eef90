package middleware

import (
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/db"
	"github.com/mugiliam/common/httpx"
)

// LoadScopedDB checks out a scoped database connection for the request and
// returns it to the pool when the handler is done.
func LoadScopedDB(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := db.ConnCtx(r.Context())
		d := db.DB(ctx)
		if d == nil {
			httpx.SendJsonRsp(ctx, w, http.StatusServiceUnavailable, &httpx.Error{
				StatusCode:  http.StatusServiceUnavailable,
				Description: "unable to reach the database",
			})
			return
		}
		defer d.Close(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
