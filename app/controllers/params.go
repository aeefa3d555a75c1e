package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"github.com/shashiranjanraj/vyapar/pkg/router"
)

// paramUint reads a numeric path parameter. A missing or non-numeric value
// is a validation failure, not a lookup miss.
func paramUint(r *http.Request, name string) (uint, error) {
	raw := router.Param(r, name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation(map[string]string{
			name: fmt.Sprintf("The %s parameter must be a positive integer.", name),
		})
	}

	return uint(id), nil
}
