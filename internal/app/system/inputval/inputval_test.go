package inputval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registration struct {
	Name       string `validate:"required,max=10" label:"Name"`
	Email      string `validate:"required,email" label:"Email"`
	Website    string `validate:"omitempty,httpurl" label:"Website"`
	University string `validate:"omitempty,objectid" label:"University ID"`
	Password   string `validate:"omitempty,min=4,maxbytes=8" label:"Password"`
}

func TestValidate_Messages(t *testing.T) {
	ok := registration{Name: "Northfield", Email: "admissions@northfield.edu"}

	tests := []struct {
		name   string
		mutate func(*registration)
		want   string
	}{
		{"valid", func(*registration) {}, ""},
		{"missing name", func(r *registration) { r.Name = "" }, "Name is required."},
		{"name too long", func(r *registration) { r.Name = "Northfield University" }, "Name must be at most 10 characters."},
		{"bad email", func(r *registration) { r.Email = "admissions" }, "A valid email address is required."},
		{"ftp website", func(r *registration) { r.Website = "ftp://northfield.edu" }, "Website must be a valid http or https URL."},
		{"bad university id", func(r *registration) { r.University = "123" }, "Invalid university id."},
		{"short password", func(r *registration) { r.Password = "pw" }, "Password must be at least 4 characters."},
		{"ascii password at byte limit", func(r *registration) { r.Password = "pass1234" }, ""},
		{"multibyte password over byte limit", func(r *registration) { r.Password = "ééééé" }, "Password must be at most 8 bytes."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ok
			tt.mutate(&in)
			res := Validate(in)
			assert.Equal(t, tt.want != "", res.HasErrors())
			assert.Equal(t, tt.want, res.First())
		})
	}
}

func TestValidate_DeclarationOrder(t *testing.T) {
	res := Validate(registration{})
	assert.Equal(t, "Name is required.", res.First())
	assert.Equal(t, "Name is required.; Email is required.", res.All())
	assert.Equal(t, "Name", res.Errors[0].Field)
}

func TestResult_Empty(t *testing.T) {
	r := &Result{}
	assert.False(t, r.HasErrors())
	assert.Empty(t, r.First())
	assert.Empty(t, r.All())
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID("507f1f77bcf86cd799439011"))
	assert.True(t, IsValidObjectID(" 507f1f77bcf86cd799439011 "))
	assert.False(t, IsValidObjectID("507f1f77bcf86cd79943901"))
	assert.False(t, IsValidObjectID("507f1f77bcf86cd79943901g"))
	assert.False(t, IsValidObjectID(""))
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://northfield.edu", true},
		{"http://localhost:8080/admissions?term=fall", true},
		{"  https://northfield.edu  ", true},
		{"", false},
		{"northfield.edu", false},
		{"//northfield.edu", false},
		{"ftp://northfield.edu", false},
		{"mailto:admissions@northfield.edu", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidHTTPURL(tt.url))
		})
	}
}
