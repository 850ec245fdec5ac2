package services

import (
	"strings"
	"testing"
)

func validMovieForm() MovieForm {
	return MovieForm{
		Title:       "Inception",
		Description: "A thief who steals corporate secrets through dream-sharing.",
		ReleaseDate: "2010-07-16",
		Actors:      "Leonardo DiCaprio, Joseph Gordon-Levitt",
		Rating:      "8.8",
		TrailerURL:  "https://www.youtube.com/watch?v=YoHD9XEInc0",
	}
}

func TestValidateMovieFormValid(t *testing.T) {
	if errs := ValidateMovieForm(validMovieForm()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateMovieFormRatingBounds(t *testing.T) {
	tests := []struct {
		rating string
		valid  bool
	}{
		{"0.0", true},
		{"10.0", true},
		{"5.5", true},
		{"10.1", false},
		{"-0.1", false},
		{"", false},
		{"ten", false},
		// NUMERIC(3,1) storage rounds to one decimal, so bounds apply
		// to the rounded value.
		{"10.05", false},
		{"10.04", true},
		{"9.99", true},
		{"-0.04", true},
	}

	for _, tt := range tests {
		form := validMovieForm()
		form.Rating = tt.rating
		errs := ValidateMovieForm(form)
		if _, bad := errs["rating"]; bad == tt.valid {
			t.Errorf("rating %q: got errors %v, want valid=%v", tt.rating, errs, tt.valid)
		}
	}
}

func TestValidateMovieFormRequiredFields(t *testing.T) {
	form := MovieForm{}
	errs := ValidateMovieForm(form)
	for _, field := range []string{"title", "description", "release_date", "actors", "rating"} {
		if errs[field] == "" {
			t.Errorf("expected error for missing %s", field)
		}
	}
}

func TestValidateMovieFormBadInputs(t *testing.T) {
	form := validMovieForm()
	form.ReleaseDate = "16/07/2010"
	form.TrailerURL = "not a url"
	form.CategoryID = "abc"
	form.Slug = "Not A Slug"

	errs := ValidateMovieForm(form)
	for _, field := range []string{"release_date", "trailer_url", "category", "slug"} {
		if errs[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
}

func TestValidateRegistration(t *testing.T) {
	form := RegistrationForm{
		Username:  "cinephile",
		FirstName: "Jordan",
		LastName:  "Lee",
		Email:     "jordan@example.com",
		Password1: "correct-horse",
		Password2: "correct-horse",
	}
	if errs := ValidateRegistration(form); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	form.Password2 = "different"
	if errs := ValidateRegistration(form); errs["password2"] == "" {
		t.Error("expected password mismatch error")
	}

	form.Password1 = "short"
	form.Password2 = "short"
	if errs := ValidateRegistration(form); errs["password1"] == "" {
		t.Error("expected short password error")
	}

	form.Email = "not-an-email"
	if errs := ValidateRegistration(form); errs["email"] == "" {
		t.Error("expected invalid email error")
	}

	form.Username = "has spaces"
	if errs := ValidateRegistration(form); errs["username"] == "" {
		t.Error("expected invalid username error")
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{8.85, 8.9},
		{10.04, 10.0},
		{10.05, 10.1},
		{7.0, 7.0},
	}
	for _, tt := range tests {
		if got := RoundRating(tt.in); got != tt.want {
			t.Errorf("RoundRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateComment(t *testing.T) {
	if msg := ValidateComment("Great movie!"); msg != "" {
		t.Errorf("expected valid, got %q", msg)
	}
	if msg := ValidateComment("   "); msg == "" {
		t.Error("expected error for blank comment")
	}
	if msg := ValidateComment(strings.Repeat("x", MaxCommentLength+1)); msg == "" {
		t.Error("expected error for oversized comment")
	}
	if msg := ValidateComment(strings.Repeat("x", MaxCommentLength)); msg != "" {
		t.Errorf("expected 2000-char comment to be valid, got %q", msg)
	}
}

func TestValidateCommentCountsCharactersNotBytes(t *testing.T) {
	// 1500 Cyrillic characters take 3000 bytes but are well under the
	// 2000-character limit.
	if msg := ValidateComment(strings.Repeat("д", 1500)); msg != "" {
		t.Errorf("expected multibyte comment to be valid, got %q", msg)
	}
	if msg := ValidateComment(strings.Repeat("д", MaxCommentLength)); msg != "" {
		t.Errorf("expected 2000-char multibyte comment to be valid, got %q", msg)
	}
	if msg := ValidateComment(strings.Repeat("д", MaxCommentLength+1)); msg == "" {
		t.Error("expected error for 2001-char multibyte comment")
	}
}

func TestValidateRegistrationCountsCharactersNotBytes(t *testing.T) {
	form := RegistrationForm{
		Username:  "cinephile",
		FirstName: strings.Repeat("é", MaxNameLength), // 30 chars, 60 bytes
		LastName:  "Lee",
		Email:     "jordan@example.com",
		Password1: "correct-horse",
		Password2: "correct-horse",
	}
	if errs := ValidateRegistration(form); errs["first_name"] != "" {
		t.Errorf("expected 30-char multibyte name to be valid, got %q", errs["first_name"])
	}

	form.FirstName = strings.Repeat("é", MaxNameLength+1)
	if errs := ValidateRegistration(form); errs["first_name"] == "" {
		t.Error("expected error for 31-char name")
	}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dark", "%dark%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}
	for _, tt := range tests {
		if got := likePattern(tt.in); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
