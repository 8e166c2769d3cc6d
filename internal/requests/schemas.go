// Package requests declares the validation schemas for every form in the
// app. Schemas are immutable package-level values; validation itself is a
// pure function of the submitted input.
package requests

import (
	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
)

// CreateEvent validates the event creation form. Field names match the
// form input names; the rename to backend field names happens later at
// the API boundary.
var CreateEvent = forms.NewSchema(
	forms.Text("title").MinLen(3, "Title must be at least 3 characters"),
	forms.Text("description").MinLen(10, "Description must be at least 10 characters"),
	forms.Text("category").Required("Category is required"),
	forms.Text("type").OneOf(api.EventTypes, "Select a valid event type"),
	forms.Text("startDate").Datetime("Invalid date and time"),
	forms.Text("endDate").Datetime("Invalid date and time"),
	forms.Text("location").MinLen(3, "Location must be at least 3 characters"),
	forms.Int("capacity").Min(1, "Capacity must be greater than 0"),
	forms.Int("minParticipants").Optional().Min(1, "Minimum participants must be at least 1"),
	forms.Float("price").Min(0, "Price cannot be negative"),
	forms.Text("status").Optional().OneOf(api.EventStatuses, "Select a valid status"),
).Cross(
	forms.EndAfterStart("startDate", "endDate", "End date must be after start date"),
)

// CreateCategory validates the category creation form.
var CreateCategory = forms.NewSchema(
	forms.Text("name").MinLen(1, "Category name is required"),
)

// CreateHost validates the host creation dialog. Password is required on
// create only; UpdateHost below drops it.
var CreateHost = forms.NewSchema(
	forms.Text("name").MinLen(2, "Name must be at least 2 characters long"),
	forms.Text("email").Email("Invalid email address"),
	forms.Text("password").MinLen(6, "Password must be at least 6 characters long"),
	forms.Text("displayName").Optional(),
	forms.Text("bio").Optional(),
	forms.Text("location").Optional(),
	forms.Text("contactNumber").Optional(),
	forms.Bool("isVerified"),
	forms.Bool("isDeleted"),
)

// UpdateHost validates the host edit dialog. Name and email stay optional
// but are still checked when present.
var UpdateHost = forms.NewSchema(
	forms.Text("name").Optional().MinLen(2, "Name must be at least 2 characters long"),
	forms.Text("email").Optional().Email("Invalid email address"),
	forms.Text("displayName").Optional(),
	forms.Text("bio").Optional(),
	forms.Text("location").Optional(),
	forms.Text("contactNumber").Optional(),
	forms.Bool("isVerified"),
	forms.Bool("isDeleted"),
)

// Login validates the sign-in form.
var Login = forms.NewSchema(
	forms.Text("email").Email("Invalid email address"),
	forms.Text("password").MinLen(6, "Password must be at least 6 characters"),
)

// Register validates the sign-up form.
var Register = forms.NewSchema(
	forms.Text("name").MinLen(2, "Name must be at least 2 characters"),
	forms.Text("email").Email("Invalid email address"),
	forms.Text("password").MinLen(6, "Password must be at least 6 characters"),
	forms.Text("confirmPassword").Required("Please confirm your password"),
).Cross(
	forms.FieldsMatch("password", "confirmPassword", "Passwords don't match"),
)

// ChangePassword validates the password change form.
var ChangePassword = forms.NewSchema(
	forms.Text("oldPassword").Required("Current password is required"),
	forms.Text("newPassword").MinLen(6, "Password must be at least 6 characters"),
	forms.Text("confirmPassword").Required("Please confirm your password"),
).Cross(
	forms.FieldsMatch("newPassword", "confirmPassword", "Passwords don't match"),
)
