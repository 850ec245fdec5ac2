package services

import (
	"math"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength   = 255
	MaxCommentLength = 2000
	MaxNameLength    = 30
	MinPasswordLen   = 8
)

// MovieForm carries the raw submitted movie fields prior to validation.
type MovieForm struct {
	Title       string
	Slug        string
	Description string
	ReleaseDate string
	Actors      string
	Rating      string
	CategoryID  string
	TrailerURL  string
}

// ValidateMovieForm returns field-level errors keyed by field name. An
// empty map means the form is valid.
func ValidateMovieForm(form MovieForm) map[string]string {
	errs := make(map[string]string)

	title := strings.TrimSpace(form.Title)
	if title == "" {
		errs["title"] = "Title is required."
	} else if utf8.RuneCountInString(title) > MaxTitleLength {
		errs["title"] = "Title is too long."
	}

	if strings.TrimSpace(form.Description) == "" {
		errs["description"] = "Description is required."
	}

	if strings.TrimSpace(form.ReleaseDate) == "" {
		errs["release_date"] = "Release date is required."
	} else if _, err := time.Parse("2006-01-02", form.ReleaseDate); err != nil {
		errs["release_date"] = "Enter a valid date (YYYY-MM-DD)."
	}

	if strings.TrimSpace(form.Actors) == "" {
		errs["actors"] = "At least one actor is required."
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(form.Rating), 64)
	if strings.TrimSpace(form.Rating) == "" {
		errs["rating"] = "Rating is required."
	} else if err != nil {
		errs["rating"] = "Enter a number."
	} else if r := RoundRating(rating); r < 0.0 || r > 10.0 {
		// The store keeps one decimal place, so bounds apply to the
		// rounded value: 10.05 rounds to 10.1 and is out of range.
		errs["rating"] = "Rating must be between 0.0 and 10.0."
	}

	if form.CategoryID != "" {
		if _, err := strconv.ParseInt(form.CategoryID, 10, 64); err != nil {
			errs["category"] = "Select a valid category."
		}
	}

	if form.TrailerURL != "" {
		u, err := url.Parse(form.TrailerURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs["trailer_url"] = "Enter a valid URL."
		}
	}

	if form.Slug != "" && Slugify(form.Slug) != form.Slug {
		errs["slug"] = "Slug may only contain lowercase letters, numbers and hyphens."
	}

	return errs
}

// RegistrationForm carries the raw submitted registration fields.
type RegistrationForm struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password1 string
	Password2 string
}

func ValidateRegistration(form RegistrationForm) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(form.Username)
	if username == "" {
		errs["username"] = "Username is required."
	} else if utf8.RuneCountInString(username) > 150 {
		errs["username"] = "Username is too long."
	} else if strings.ContainsAny(username, " \t/") {
		errs["username"] = "Username may not contain spaces or slashes."
	}

	if strings.TrimSpace(form.FirstName) == "" {
		errs["first_name"] = "First name is required."
	} else if utf8.RuneCountInString(form.FirstName) > MaxNameLength {
		errs["first_name"] = "First name is too long."
	}

	if strings.TrimSpace(form.LastName) == "" {
		errs["last_name"] = "Last name is required."
	} else if utf8.RuneCountInString(form.LastName) > MaxNameLength {
		errs["last_name"] = "Last name is too long."
	}

	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(form.Email); err != nil {
		errs["email"] = "Enter a valid email address."
	}

	if len(form.Password1) < MinPasswordLen {
		errs["password1"] = "Password must be at least 8 characters."
	} else if form.Password1 != form.Password2 {
		errs["password2"] = "Passwords do not match."
	}

	return errs
}

// RoundRating rounds to one decimal place, matching the NUMERIC(3,1)
// column the value is stored in.
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}

// ValidateComment checks a comment body; returns an empty string when valid.
// Length is measured in characters, not bytes.
func ValidateComment(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "Comment may not be empty."
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return "Comment may not exceed 2000 characters."
	}
	return ""
}

// likePattern escapes LIKE metacharacters and wraps the query for a
// case-insensitive substring match.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
