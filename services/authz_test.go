package services

import (
	"testing"

	"Cinelog/models"
)

func TestCanModifyMovie(t *testing.T) {
	owner := &models.User{ID: 1}
	staff := &models.User{ID: 2, IsStaff: true}
	other := &models.User{ID: 3}
	movie := &models.Movie{ID: 10, CreatedBy: 1}

	if !CanModifyMovie(owner, movie) {
		t.Error("creator should be able to modify their movie")
	}
	if CanModifyMovie(other, movie) {
		t.Error("non-creator should not be able to modify the movie")
	}
	if CanModifyMovie(staff, movie) {
		t.Error("staff status alone should not grant movie modification")
	}
	if CanModifyMovie(nil, movie) {
		t.Error("nil user should not be able to modify anything")
	}
	if CanModifyMovie(owner, nil) {
		t.Error("nil movie should never be modifiable")
	}
}

func TestCanDeleteComment(t *testing.T) {
	author := &models.User{ID: 1}
	staff := &models.User{ID: 2, IsStaff: true}
	other := &models.User{ID: 3}
	comment := &models.Comment{ID: 5, UserID: 1}

	if !CanDeleteComment(author, comment) {
		t.Error("author should be able to delete their comment")
	}
	if !CanDeleteComment(staff, comment) {
		t.Error("staff should be able to delete any comment")
	}
	if CanDeleteComment(other, comment) {
		t.Error("unrelated user should not be able to delete the comment")
	}
	if CanDeleteComment(nil, comment) {
		t.Error("nil user should not be able to delete anything")
	}
}

func TestCanManageCategories(t *testing.T) {
	if !CanManageCategories(&models.User{ID: 1, IsStaff: true}) {
		t.Error("staff should manage categories")
	}
	if CanManageCategories(&models.User{ID: 2}) {
		t.Error("regular user should not manage categories")
	}
	if CanManageCategories(nil) {
		t.Error("nil user should not manage categories")
	}
}
