package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
In-memory фейки репозиториев для юнит-тестов сервисов.
Аргумент *gorm.DB игнорируется: сервисы тестируются без БД.
*/

type fakeUserRepo struct {
	users map[string]*models.User // id -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*models.Category)}
}

func (f *fakeCategoryRepo) Create(_ *gorm.DB, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) ListActive(_ *gorm.DB) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		if !c.IsDeleted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindActiveByID(_ *gorm.DB, id string) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok || c.IsDeleted {
		return nil, repositories.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) FindByID(_ *gorm.DB, id string) (*models.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Update(_ *gorm.DB, category *models.Category) error {
	f.categories[category.ID] = category
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (f *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) ListActive(_ *gorm.DB) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range f.jobs {
		if !j.IsDeleted {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindActiveByID(_ *gorm.DB, id string) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok || j.IsDeleted {
		return nil, repositories.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) ListActiveByCategory(_ *gorm.DB, categoryID string) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range f.jobs {
		if !j.IsDeleted && j.CategoryID == categoryID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListActiveByOwner(_ *gorm.DB, ownerID string) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range f.jobs {
		if !j.IsDeleted && j.OwnerID == ownerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindActiveByIDAndOwner(_ *gorm.DB, id, ownerID string) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok || j.IsDeleted || j.OwnerID != ownerID {
		return nil, repositories.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) Update(_ *gorm.DB, job *models.Job) error {
	f.jobs[job.ID] = job
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationRepo) Create(_ *gorm.DB, application *models.Application) error {
	// Эмулируем уникальный индекс (user_id, job_id)
	for _, a := range f.applications {
		if a.UserID == application.UserID && a.JobID == application.JobID {
			return repositories.ErrDuplicateApplication
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	f.applications[application.ID] = application
	return nil
}

func (f *fakeApplicationRepo) ExistsByUserAndJob(_ *gorm.DB, userID, jobID string) (bool, error) {
	for _, a := range f.applications {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListByJob(_ *gorm.DB, jobID string) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range f.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) CountByUser(_ *gorm.DB, userID string) (int64, error) {
	var count int64
	for _, a := range f.applications {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}
