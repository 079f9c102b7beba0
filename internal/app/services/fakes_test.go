package services_test

import (
	"context"
	"sort"

	"github.com/dkravch/studyplan/internal/app/models"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. Each fake keeps
// records in a map keyed by ID and hands out copies so tests cannot mutate
// stored state through returned pointers.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[int64]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.nextID++
	student.ID = r.nextID
	stored := *student
	r.students[student.ID] = &stored
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, nil
	}
	copied := *student
	return &copied, nil
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, student := range r.students {
		copied := *student
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	stored := *student
	r.students[student.ID] = &stored
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	delete(r.students, id)
	return nil
}

type fakeSubjectRepo struct {
	subjects map[int64]*models.Subject
	nextID   int64
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[int64]*models.Subject)}
}

func (r *fakeSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	r.nextID++
	subject.ID = r.nextID
	stored := *subject
	r.subjects[subject.ID] = &stored
	return nil
}

func (r *fakeSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	subject, ok := r.subjects[id]
	if !ok {
		return nil, nil
	}
	copied := *subject
	return &copied, nil
}

func (r *fakeSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	out := make([]*models.Subject, 0, len(r.subjects))
	for _, subject := range r.subjects {
		copied := *subject
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubjectRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.Subject, error) {
	var out []*models.Subject
	for _, subject := range r.subjects {
		if subject.StudentID != nil && *subject.StudentID == studentID {
			copied := *subject
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubjectRepo) Update(_ context.Context, subject *models.Subject) error {
	stored := *subject
	r.subjects[subject.ID] = &stored
	return nil
}

func (r *fakeSubjectRepo) Delete(_ context.Context, id int64) error {
	delete(r.subjects, id)
	return nil
}

type fakePlanRepo struct {
	plans     map[int64]*models.AcademicPlan
	nextID    int64
	createErr error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[int64]*models.AcademicPlan)}
}

func (r *fakePlanRepo) Create(_ context.Context, plan *models.AcademicPlan) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	plan.ID = r.nextID
	stored := *plan
	r.plans[plan.ID] = &stored
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id int64) (*models.AcademicPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	copied := *plan
	return &copied, nil
}

func (r *fakePlanRepo) GetAll(_ context.Context) ([]*models.AcademicPlan, error) {
	out := make([]*models.AcademicPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		copied := *plan
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePlanRepo) UpdateGrade(_ context.Context, id int64, grade *float64) error {
	plan, ok := r.plans[id]
	if !ok {
		return nil
	}
	plan.FinalGrade = grade
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id int64) error {
	delete(r.plans, id)
	return nil
}

func ptrInt(v int) *int           { return &v }
func ptrInt64(v int64) *int64     { return &v }
func ptrStr(v string) *string     { return &v }
func ptrFloat(v float64) *float64 { return &v }
