// Package formutil decodes request bodies into handler input structs.
//
// Clients send either JSON or url-encoded forms (multipart is accepted too).
// Both land in the same struct: JSON via encoding/json, forms by matching each
// string field's json tag against the form key.
//
// Example usage:
//
//	var in struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//	if err := formutil.Decode(r, &in); err != nil {
//		h.ErrLog.Write(w, r, err)
//		return
//	}
package formutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
)

// MaxBodyBytes caps non-multipart request bodies.
const MaxBodyBytes = 1 << 20

// Decode fills dst, a pointer to a struct, from the request body.
// Malformed input yields an InvalidArgument error.
func Decode(r *http.Request, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("formutil: dst must be a pointer to a struct, got %T", dst)
	}

	if isJSON(r) {
		dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
		if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return apperr.Invalid("Invalid request body.")
		}
		return nil
	}

	if err := ParseForm(r); err != nil {
		return err
	}
	assign(rv.Elem(), func(key string) (string, bool) { return Lookup(r, key) })
	return nil
}

// ParseForm parses url-encoded and multipart bodies. Multipart parts larger
// than maxMemory are spooled to disk by net/http.
func ParseForm(r *http.Request) error {
	if r.Form != nil {
		return nil
	}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(32 << 20)
	} else {
		r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
		err = r.ParseForm()
	}
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return apperr.PayloadTooLarge("Request body too large.")
		}
		return apperr.Invalid("Invalid form data.")
	}
	return nil
}

// Lookup reports the value of key in the parsed body form and whether the
// key was present at all. Query parameters are not consulted.
func Lookup(r *http.Request, key string) (string, bool) {
	if r.MultipartForm != nil {
		if vs, ok := r.MultipartForm.Value[key]; ok && len(vs) > 0 {
			return vs[0], true
		}
		return "", false
	}
	if vs, ok := r.PostForm[key]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

func isJSON(r *http.Request) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}

// assign copies form values into the string and *string fields of v.
func assign(v reflect.Value, get func(string) (string, bool)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		val, ok := get(name)
		if !ok {
			continue
		}
		fv := v.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			fv.SetString(val)
		case fv.Kind() == reflect.Pointer && f.Type.Elem().Kind() == reflect.String:
			s := val
			fv.Set(reflect.ValueOf(&s))
		}
	}
}
