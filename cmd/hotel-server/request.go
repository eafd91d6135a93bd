package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const _dateLayout = "2006-01-02"

func dateQueryParam(r *http.Request, key string) (time.Time, bool, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return time.Time{}, false, nil
	}

	val = strings.Trim(val, `'"`)

	t, err := time.Parse(_dateLayout, val)
	if err != nil {
		return time.Time{}, true, fmt.Errorf("invalid %s: expected format %s", key, _dateLayout)
	}

	return t, true, nil
}

func optionalIntQueryParam(r *http.Request, key string) *int {
	ref := new(int)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	*ref = intVal
	return ref
}
