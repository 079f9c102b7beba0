package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dkravch/studyplan/internal/app/controllers"
	"github.com/dkravch/studyplan/internal/app/models"
	"github.com/dkravch/studyplan/internal/app/routes"
	"github.com/dkravch/studyplan/internal/app/services"
	"github.com/dkravch/studyplan/internal/middleware"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
	"github.com/dkravch/studyplan/internal/pkg/auth"
)

// testAPI wires the real router, middleware, controllers and services over
// in-memory repositories. Tests drive it through httptest like any client.
type testAPI struct {
	router      *gin.Engine
	jwtService  *auth.JWTService
	userRepo    *memUserRepo
	studentRepo *memStudentRepo
	subjectRepo *memSubjectRepo
	planRepo    *memPlanRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		userRepo:    &memUserRepo{users: make(map[string]*models.User)},
		studentRepo: &memStudentRepo{students: make(map[int64]*models.Student)},
		subjectRepo: &memSubjectRepo{subjects: make(map[int64]*models.Subject)},
		planRepo:    &memPlanRepo{plans: make(map[int64]*models.AcademicPlan)},
	}

	api.jwtService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "studyplan.test",
	})

	authService := services.NewAuthService(api.userRepo, api.jwtService, zerolog.Nop())
	studentService := services.NewStudentService(api.studentRepo)
	subjectService := services.NewSubjectService(api.subjectRepo, api.planRepo)
	planService := services.NewAcademicPlanService(api.planRepo, api.studentRepo, api.subjectRepo)

	api.router = gin.New()
	routes.SetupRouter(
		api.router,
		controllers.NewAuthController(authService),
		controllers.NewStudentController(studentService),
		controllers.NewSubjectController(subjectService),
		controllers.NewAcademicPlanController(planService),
		middleware.NewAuthMiddleware(api.jwtService),
	)

	return api
}

// token issues a valid bearer token without going through registration.
func (a *testAPI) token(t *testing.T) string {
	t.Helper()
	token, err := a.jwtService.GenerateToken(&models.User{ID: 1, Username: "tester"})
	require.NoError(t, err)
	return token
}

// do performs a request. A non-empty token is sent as a bearer header.
func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// In-memory repositories satisfying the service interfaces.

type memUserRepo struct {
	users  map[string]*models.User
	nextID int64
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return apperrors.ErrUserAlreadyExists
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.Username] = &stored
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

type memStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func (r *memStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.nextID++
	student.ID = r.nextID
	stored := *student
	r.students[student.ID] = &stored
	return nil
}

func (r *memStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, nil
	}
	copied := *student
	return &copied, nil
}

func (r *memStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, student := range r.students {
		copied := *student
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memStudentRepo) Update(_ context.Context, student *models.Student) error {
	stored := *student
	r.students[student.ID] = &stored
	return nil
}

func (r *memStudentRepo) Delete(_ context.Context, id int64) error {
	delete(r.students, id)
	return nil
}

type memSubjectRepo struct {
	subjects map[int64]*models.Subject
	nextID   int64
}

func (r *memSubjectRepo) Create(_ context.Context, subject *models.Subject) error {
	r.nextID++
	subject.ID = r.nextID
	stored := *subject
	r.subjects[subject.ID] = &stored
	return nil
}

func (r *memSubjectRepo) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	subject, ok := r.subjects[id]
	if !ok {
		return nil, nil
	}
	copied := *subject
	return &copied, nil
}

func (r *memSubjectRepo) GetAll(_ context.Context) ([]*models.Subject, error) {
	out := make([]*models.Subject, 0, len(r.subjects))
	for _, subject := range r.subjects {
		copied := *subject
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSubjectRepo) GetByStudentID(_ context.Context, studentID int64) ([]*models.Subject, error) {
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

func (r *memSubjectRepo) Update(_ context.Context, subject *models.Subject) error {
	stored := *subject
	r.subjects[subject.ID] = &stored
	return nil
}

func (r *memSubjectRepo) Delete(_ context.Context, id int64) error {
	delete(r.subjects, id)
	return nil
}

type memPlanRepo struct {
	plans  map[int64]*models.AcademicPlan
	nextID int64
}

func (r *memPlanRepo) Create(_ context.Context, plan *models.AcademicPlan) error {
	r.nextID++
	plan.ID = r.nextID
	stored := *plan
	r.plans[plan.ID] = &stored
	return nil
}

func (r *memPlanRepo) GetByID(_ context.Context, id int64) (*models.AcademicPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	copied := *plan
	return &copied, nil
}

func (r *memPlanRepo) GetAll(_ context.Context) ([]*models.AcademicPlan, error) {
	out := make([]*models.AcademicPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		copied := *plan
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPlanRepo) UpdateGrade(_ context.Context, id int64, grade *float64) error {
	plan, ok := r.plans[id]
	if !ok {
		return nil
	}
	plan.FinalGrade = grade
	return nil
}

func (r *memPlanRepo) Delete(_ context.Context, id int64) error {
	delete(r.plans, id)
	return nil
}
