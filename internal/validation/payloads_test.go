package validation

import (
	"testing"
	"time"

	"github.com/groupdir/backend/internal/models"
)

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		Name:      "Ada",
		Surname:   "Lovelace",
		BirthDate: models.NewDate(1815, time.December, 10),
		Sex:       models.SexFemale,
	}
}

func TestCreateUserRequestValid(t *testing.T) {
	if err := validCreateRequest().Validate(); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestCreateUserRequestMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CreateUserRequest)
		message string
	}{
		{"missing name", func(r *CreateUserRequest) { r.Name = "" }, "name is required"},
		{"missing surname", func(r *CreateUserRequest) { r.Surname = "" }, "surname is required"},
		{"missing birth date", func(r *CreateUserRequest) { r.BirthDate = models.Date{} }, "birth_date is required"},
		{"missing sex", func(r *CreateUserRequest) { r.Sex = "" }, "sex is required"},
		{"invalid sex", func(r *CreateUserRequest) { r.Sex = "robot" }, "sex must be one of: male female other"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			err := req.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if got := FirstError(err); got != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, got)
			}
		})
	}
}

func TestUpdateUserRequestEmptyIsValid(t *testing.T) {
	var req UpdateUserRequest
	if err := req.Validate(); err != nil {
		t.Fatalf("expected empty payload to be valid, got %v", err)
	}
	if updates := req.Updates(); len(updates) != 0 {
		t.Fatalf("expected no updates, got %+v", updates)
	}
}

func TestUpdateUserRequestInvalidSex(t *testing.T) {
	sex := models.Sex("unknown")
	req := UpdateUserRequest{Sex: &sex}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if got := FirstError(err); got != "sex must be one of: male female other" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestUpdateUserRequestUpdatesMap(t *testing.T) {
	name := "Grace"
	birth := models.NewDate(1906, time.December, 9)
	req := UpdateUserRequest{Name: &name, BirthDate: &birth}

	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	updates := req.Updates()
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %+v", updates)
	}
	if updates["name"] != "Grace" {
		t.Fatalf("expected name update, got %+v", updates)
	}
	if _, present := updates["surname"]; present {
		t.Fatalf("expected surname omitted, got %+v", updates)
	}
	if _, present := updates["birth_date"]; !present {
		t.Fatalf("expected birth_date present, got %+v", updates)
	}
}

func TestCreateUserRequestToModel(t *testing.T) {
	req := validCreateRequest()
	user := req.User()

	if user.Name != req.Name || user.Surname != req.Surname || user.Sex != req.Sex {
		t.Fatalf("unexpected model: %+v", user)
	}
	if !user.BirthDate.Equal(req.BirthDate.Time) {
		t.Fatalf("expected birth date carried over, got %v", user.BirthDate)
	}
}
