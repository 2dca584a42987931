package shared

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ParseID extracts the numeric {id} path variable.
func ParseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id), err
}
