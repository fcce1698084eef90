package apis

import (
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/common"
	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/common/hatchrbac"
	"github.com/mugiliam/common/httpx"
)

var warehouseHandlers = []httpx.RoleAuthorizedHandlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/",
		Handler: createWarehouse,
		Op:      hatchrbac.Create,
	},
	{
		Method:  http.MethodGet,
		Path:    "/{warehouseId}",
		Handler: getWarehouse,
		Op:      hatchrbac.Read,
	},
	{
		Method:  http.MethodPut,
		Path:    "/{warehouseId}/status",
		Handler: setWarehouseStatus,
		Op:      hatchrbac.Update,
	},
	{
		Method:  http.MethodPost,
		Path:    "/{warehouseId}/tables/load",
		Handler: loadTables,
		Op:      hatchrbac.Read,
	},
	{
		Method:  http.MethodPost,
		Path:    "/{warehouseId}/tables/{tableId}/references",
		Handler: replaceReferences,
		Op:      hatchrbac.Update,
	},
	{
		Method:  http.MethodGet,
		Path:    "/{warehouseId}/tables/{tableId}/references",
		Handler: getReferences,
		Op:      hatchrbac.Read,
	},
}

func Router(r chi.Router) {
	r.Use(RequireTenant)
	//TODO: Implement authentication
	for _, handler := range warehouseHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
}

// RequireTenant rejects requests that reach the warehouse routes without a
// tenant id resolved into the context.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if common.TenantIdFromContext(r.Context()) == "" {
			httpx.ErrInvalidRequest().Send(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
