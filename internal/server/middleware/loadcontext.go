package middleware

import (
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/glacierdata/lakecatsrv/pkg/types"
	"github.com/go-chi/chi/v5"
)

func LoadContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantId := chi.URLParam(r, "tenantId")
		r = r.WithContext(
			common.SetTenantIdInContext(r.Context(), types.TenantId(tenantId)),
		)
		next.ServeHTTP(w, r)
	})
}
