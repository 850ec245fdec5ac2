package services

import "Cinelog/models"

// Authorization predicates. Both fail closed: a nil actor is always denied.

// CanModifyMovie reports whether the actor may edit or delete the movie.
// Only the creator may.
func CanModifyMovie(user *models.User, movie *models.Movie) bool {
	if user == nil || movie == nil {
		return false
	}
	return user.ID == movie.CreatedBy
}

// CanDeleteComment reports whether the actor may remove the comment.
// The author may; staff may moderate anyone's.
func CanDeleteComment(user *models.User, comment *models.Comment) bool {
	if user == nil || comment == nil {
		return false
	}
	return user.ID == comment.UserID || user.IsStaff
}

// CanManageCategories reports whether the actor may create or delete
// categories.
func CanManageCategories(user *models.User) bool {
	return user != nil && user.IsStaff
}
