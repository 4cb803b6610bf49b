package lambda

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedBody is returned when the request body is not a JSON object
	ErrMalformedBody = errors.New("malformed request body")

	// ErrMissingPathID is returned when the id path parameter is absent
	ErrMissingPathID = errors.New("missing id path parameter")
)

// ParseBody decodes the request body as a JSON object. Numbers are kept as
// json.Number so integer fields can be told apart from floats downstream.
func ParseBody(req *Request) (map[string]interface{}, error) {
	if req == nil || len(bytes.TrimSpace(req.Body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedBody)
	}

	decoder := json.NewDecoder(bytes.NewReader(req.Body))
	decoder.UseNumber()

	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if payload == nil {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedBody)
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrMalformedBody)
	}

	return payload, nil
}

// PathID returns the id path parameter
func PathID(req *Request) (string, error) {
	if req == nil || req.PathParams == nil {
		return "", ErrMissingPathID
	}

	id, ok := req.PathParams["id"]
	if !ok || id == "" {
		return "", ErrMissingPathID
	}

	return id, nil
}
