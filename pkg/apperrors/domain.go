package apperrors

import (
	"net/http"
)

/*
Предопределенные доменные ошибки доски вакансий.
Сервисы возвращают эти значения, хендлеры отдают их через HandleError.
*/

// --- Auth ---

// ErrEmailAlreadyExists - email уже занят другим пользователем (409)
var ErrEmailAlreadyExists = New(
	CodeConflict,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверная пара email/пароль (401)
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// --- Общее ---

// ErrInvalidID - идентификатор синтаксически невалиден.
// Намеренно 400, а не 404: "не смогли даже поискать" != "искали, но нет".
var ErrInvalidID = New(
	CodeValidationFailed,
	"request",
	"Invalid id",
	http.StatusBadRequest,
)

// --- Categories ---

// ErrCategoryNotFound - категория отсутствует или уже soft-deleted (404)
var ErrCategoryNotFound = New(
	CodeNotFound,
	"category",
	"Category not found",
	http.StatusNotFound,
)

// ErrCategoryAlreadyDeleted - повторное удаление категории (400)
var ErrCategoryAlreadyDeleted = New(
	CodeInvalidOperation,
	"category",
	"Category is already deleted",
	http.StatusBadRequest,
)

// ErrCategoryAccessDenied - управлять категориями может только админ (403)
var ErrCategoryAccessDenied = New(
	CodeForbidden,
	"category",
	"You do not have access to manage categories",
	http.StatusForbidden,
)

// --- Jobs ---

// ErrJobNotFound - вакансия отсутствует или soft-deleted (404)
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrNotJobOwner - операция доступна только владельцу вакансии (403)
var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You are not the owner of this job",
	http.StatusForbidden,
)

// --- Applications ---

// ErrOwnJobApplication - владелец не может откликнуться на свою вакансию (400)
var ErrOwnJobApplication = New(
	CodeInvalidOperation,
	"application",
	"Job owners cannot apply to their own job",
	http.StatusBadRequest,
)

// ErrAlreadyApplied - повторный отклик на ту же вакансию (400)
var ErrAlreadyApplied = New(
	CodeInvalidOperation,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)
