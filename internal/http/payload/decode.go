package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

const maxFormMemory = 10 << 20

var ErrUnsupportedPayload error = errors.New("payload cannot be bound from form values")

// FormBinder is implemented by request payloads that can be filled from
// url-encoded or multipart form values.
type FormBinder interface {
	BindForm(values url.Values)
}

type Decoder struct{}

// DecodePayload fills object from the request and validates it. JSON bodies are
// decoded when the content type says so; otherwise the form body and the query
// string are bound through FormBinder.
func (d Decoder) DecodePayload(r *http.Request, object any) error {
	var err error
	if mediaType(r) == "application/json" {
		err = decodeJSON(r, object)
	} else {
		err = decodeForm(r, object)
	}
	if err != nil {
		return err
	}

	return validatePayload(object)
}

func decodeJSON(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

func decodeForm(r *http.Request, object any) error {
	binder, ok := object.(FormBinder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedPayload, object)
	}

	values, err := formValues(r)
	if err != nil {
		return fmt.Errorf("decoding form payload: %w", err)
	}

	binder.BindForm(values)
	return nil
}

func formValues(r *http.Request) (url.Values, error) {
	switch mediaType(r) {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
		return r.Form, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		if bodyParsed(r.Method) {
			return r.Form, nil
		}
		// net/http leaves the body of DELETE and GET requests unread
		return mergeBody(r)
	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return r.Form, nil
	}
}

func mergeBody(r *http.Request) (url.Values, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxFormMemory))
	if err != nil {
		return nil, err
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, err
	}

	for k, v := range r.Form {
		values[k] = append(values[k], v...)
	}

	return values, nil
}

func bodyParsed(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}

	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}

	return mt
}
