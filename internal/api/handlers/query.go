package handlers

import (
	"fmt"
	"net/http"
	"strconv"
)

// QueryString возвращает параметр запроса или nil, если он не передан
func QueryString(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}

// QueryInt разбирает целочисленный параметр запроса
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s: %w", name, err)
	}
	return &value, nil
}
