package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravch/studyplan/internal/app/models"
)

func (a *testAPI) seedStudentRecord(t *testing.T) *models.Student {
	t.Helper()
	student := &models.Student{FirstName: "Taras", LastName: "Kovalenko"}
	require.NoError(t, a.studentRepo.Create(context.Background(), student))
	return student
}

func (a *testAPI) seedSubjectRecord(t *testing.T) *models.Subject {
	t.Helper()
	subject := &models.Subject{Name: "Algebra", LecturesHours: 30, PracticeHours: 20, LabHours: 10}
	require.NoError(t, a.subjectRepo.Create(context.Background(), subject))
	return subject
}

func TestPlans_CreateAndGet_ResolvesReferences(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)
	student := api.seedStudentRecord(t)
	subject := api.seedSubjectRecord(t)

	w := api.do(t, http.MethodPost, "/api/v1/academic-plans", token, map[string]interface{}{
		"studentId": student.ID,
		"subjectId": subject.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.AcademicPlan
	decodeJSON(t, w, &created)
	require.NotZero(t, created.ID)
	require.NotNil(t, created.Student)
	assert.Equal(t, "Taras", created.Student.FirstName)
	require.NotNil(t, created.Subject)
	assert.Equal(t, "Algebra", created.Subject.Name)
	assert.Nil(t, created.FinalGrade)

	w = api.do(t, http.MethodGet, "/api/v1/academic-plans/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"finalGrade":null`)
}

func TestPlans_Get_DanglingReferenceSerializesNull(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)
	subject := api.seedSubjectRecord(t)

	// Student 999 does not exist; the plan is stored and served anyway.
	w := api.do(t, http.MethodPost, "/api/v1/academic-plans", token, map[string]interface{}{
		"studentId": 999,
		"subjectId": subject.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/academic-plans/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"student":null`)

	var plan models.AcademicPlan
	decodeJSON(t, w, &plan)
	assert.Nil(t, plan.Student)
	require.NotNil(t, plan.Subject)
	assert.Equal(t, "Algebra", plan.Subject.Name)
}

func TestPlans_Patch_GradeLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	w := api.do(t, http.MethodPost, "/api/v1/academic-plans", token, map[string]interface{}{
		"studentId": 1,
		"subjectId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPatch, "/api/v1/academic-plans/1", token, map[string]interface{}{
		"finalGrade": 4.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var graded models.AcademicPlan
	decodeJSON(t, w, &graded)
	require.NotNil(t, graded.FinalGrade)
	assert.Equal(t, 4.5, *graded.FinalGrade)

	// An empty patch body clears the grade.
	w = api.do(t, http.MethodPatch, "/api/v1/academic-plans/1", token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"finalGrade":null`)

	w = api.do(t, http.MethodPatch, "/api/v1/academic-plans/1", token, map[string]interface{}{
		"finalGrade": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlans_Create_OutOfRangeGrade(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/academic-plans", api.token(t), map[string]interface{}{
		"studentId":  1,
		"subjectId":  1,
		"finalGrade": 0.5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlans_Get_NotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/academic-plans/999", api.token(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Academic plan not found"}`, w.Body.String())
}

func TestPlans_Delete(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	w := api.do(t, http.MethodPost, "/api/v1/academic-plans", token, map[string]interface{}{
		"studentId": 1,
		"subjectId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodDelete, "/api/v1/academic-plans/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Academic plan deleted"}`, w.Body.String())

	w = api.do(t, http.MethodDelete, "/api/v1/academic-plans/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlans_List_ResolvesEachPlan(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)
	student := api.seedStudentRecord(t)
	subject := api.seedSubjectRecord(t)

	for i := 0; i < 2; i++ {
		w := api.do(t, http.MethodPost, "/api/v1/academic-plans", token, map[string]interface{}{
			"studentId": student.ID,
			"subjectId": subject.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(t, http.MethodGet, "/api/v1/academic-plans", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []models.AcademicPlan
	decodeJSON(t, w, &plans)
	require.Len(t, plans, 2)
	for _, plan := range plans {
		assert.NotNil(t, plan.Student)
		assert.NotNil(t, plan.Subject)
	}
}
