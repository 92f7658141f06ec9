package forms

import "testing"

type fakeUniquenessChecker struct {
	usernames map[string]bool
	emails    map[string]bool
}

func (checker fakeUniquenessChecker) UsernameTaken(username string) (bool, error) {
	return checker.usernames[username], nil
}

func (checker fakeUniquenessChecker) EmailTaken(email string) (bool, error) {
	return checker.emails[email], nil
}

func emptyChecker() fakeUniquenessChecker {
	return fakeUniquenessChecker{usernames: map[string]bool{}, emails: map[string]bool{}}
}

func TestRegistrationFormValid(t *testing.T) {
	form := &RegistrationForm{
		Username:        " alice ",
		Email:           " Alice@X.COM ",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	}

	fieldErrors, err := form.Validate(emptyChecker())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if fieldErrors.Any() {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
	if form.Username != "alice" {
		t.Fatalf("expected trimmed username, got %q", form.Username)
	}
	if form.Email != "alice@x.com" {
		t.Fatalf("expected normalized email, got %q", form.Email)
	}
}

func TestRegistrationFormCollectsAllFieldErrors(t *testing.T) {
	form := &RegistrationForm{
		Username:        "a",
		Email:           "not-an-email",
		Password:        "pw123",
		ConfirmPassword: "different",
	}

	fieldErrors, err := form.Validate(emptyChecker())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	for _, field := range []string{"username", "email", "confirm_password"} {
		if _, exists := fieldErrors[field]; !exists {
			t.Fatalf("expected an error for %q, got %v", field, fieldErrors)
		}
	}
}

func TestRegistrationFormUsernameLengthBounds(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "minimum length", username: "ab", valid: true},
		{name: "maximum length", username: "abcdefghijklmnopqrst", valid: true},
		{name: "too short", username: "a", valid: false},
		{name: "too long", username: "abcdefghijklmnopqrstu", valid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			form := &RegistrationForm{
				Username:        testCase.username,
				Email:           "user@example.com",
				Password:        "pw123",
				ConfirmPassword: "pw123",
			}
			fieldErrors, err := form.Validate(emptyChecker())
			if err != nil {
				t.Fatalf("validate: %v", err)
			}
			_, hasError := fieldErrors["username"]
			if testCase.valid && hasError {
				t.Fatalf("expected %q to pass, got %v", testCase.username, fieldErrors)
			}
			if !testCase.valid && !hasError {
				t.Fatalf("expected %q to fail", testCase.username)
			}
		})
	}
}

func TestRegistrationFormUniqueness(t *testing.T) {
	checker := fakeUniquenessChecker{
		usernames: map[string]bool{"alice": true},
		emails:    map[string]bool{"alice@x.com": true},
	}

	form := &RegistrationForm{
		Username:        "alice",
		Email:           "alice@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	}

	fieldErrors, err := form.Validate(checker)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if fieldErrors["username"] != "That username is taken. Please choose a different one." {
		t.Fatalf("unexpected username message %q", fieldErrors["username"])
	}
	if fieldErrors["email"] != "That email is taken. Please choose a different one." {
		t.Fatalf("unexpected email message %q", fieldErrors["email"])
	}
}

func TestRegistrationFormSkipsUniquenessWhenFieldInvalid(t *testing.T) {
	checker := fakeUniquenessChecker{
		usernames: map[string]bool{"a": true},
		emails:    map[string]bool{},
	}

	form := &RegistrationForm{
		Username:        "a",
		Email:           "user@example.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
	}

	fieldErrors, err := form.Validate(checker)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if fieldErrors["username"] == "That username is taken. Please choose a different one." {
		t.Fatal("length error must win over the uniqueness message")
	}
}

func TestLoginFormValidation(t *testing.T) {
	form := &LoginForm{Email: "USER@example.com ", Password: " pw123 "}
	if fieldErrors := form.Validate(); fieldErrors.Any() {
		t.Fatalf("expected valid login form, got %v", fieldErrors)
	}
	if form.Email != "user@example.com" {
		t.Fatalf("expected normalized email, got %q", form.Email)
	}

	invalid := &LoginForm{Email: "nope", Password: ""}
	fieldErrors := invalid.Validate()
	if _, exists := fieldErrors["email"]; !exists {
		t.Fatalf("expected email error, got %v", fieldErrors)
	}
	if _, exists := fieldErrors["password"]; !exists {
		t.Fatalf("expected password error, got %v", fieldErrors)
	}
}

func TestParseBoolField(t *testing.T) {
	for _, value := range []string{"1", "true", "on", "yes", " ON "} {
		if !ParseBoolField(value) {
			t.Fatalf("expected %q to be truthy", value)
		}
	}
	for _, value := range []string{"", "0", "false", "off"} {
		if ParseBoolField(value) {
			t.Fatalf("expected %q to be falsy", value)
		}
	}
}
