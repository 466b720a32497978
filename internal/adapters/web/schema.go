package web

import (
	"net/http"

	"fulfilment-monolith/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"
)

// schemaTypes maps schema names to the request payloads they describe.
var schemaTypes = map[string]any{
	"warehouse":   app.WarehouseRequest{},
	"replacement": app.WarehouseRequest{},
	"association": app.AssociationRequest{},
	"product":     app.ProductRequest{},
	"store":       app.StoreRequest{},
}

// requestSchema handles GET /api/schema/{name}: the JSON Schema of a write
// request payload, generated by reflection.
func (h *Handler) requestSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := schemaTypes[name]
	if !ok {
		writeError(w, r, "unknown schema: "+name, "NOT_FOUND", http.StatusNotFound)
		return
	}
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	writeJSON(w, http.StatusOK, reflector.Reflect(v))
}
