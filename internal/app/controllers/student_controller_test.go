package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravch/studyplan/internal/app/models"
)

func TestStudents_CreateAndGet(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	w := api.do(t, http.MethodPost, "/api/v1/students", token, map[string]interface{}{
		"firstName": "Taras",
		"lastName":  "Kovalenko",
		"phone":     "+380501234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Student
	decodeJSON(t, w, &created)
	require.NotZero(t, created.ID)

	w = api.do(t, http.MethodGet, "/api/v1/students/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Student
	decodeJSON(t, w, &fetched)
	assert.Equal(t, "Taras", fetched.FirstName)
	assert.Equal(t, "Kovalenko", fetched.LastName)
	require.NotNil(t, fetched.Phone)
	assert.Equal(t, "+380501234567", *fetched.Phone)
}

func TestStudents_Create_MissingRequiredField(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/students", api.token(t), map[string]interface{}{
		"firstName": "Taras",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudents_Get_NotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/students/999", api.token(t), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Student not found"}`, w.Body.String())
}

func TestStudents_Get_MalformedID(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/students/abc", api.token(t), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Student ID must be a valid number"}`, w.Body.String())
}

func TestStudents_Patch_Partial(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	w := api.do(t, http.MethodPost, "/api/v1/students", token, map[string]interface{}{
		"firstName": "Taras",
		"lastName":  "Kovalenko",
		"address":   "Kyiv",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPatch, "/api/v1/students/1", token, map[string]interface{}{
		"phone": "+380501112233",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Student
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Taras", updated.FirstName)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Kyiv", *updated.Address)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+380501112233", *updated.Phone)
}

func TestStudents_Delete(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	w := api.do(t, http.MethodPost, "/api/v1/students", token, map[string]interface{}{
		"firstName": "Taras",
		"lastName":  "Kovalenko",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodDelete, "/api/v1/students/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Student deleted"}`, w.Body.String())

	w = api.do(t, http.MethodDelete, "/api/v1/students/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudents_Delete_KeepsSubjects(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	w := api.do(t, http.MethodPost, "/api/v1/students", token, map[string]interface{}{
		"firstName": "Taras",
		"lastName":  "Kovalenko",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/subjects", token, map[string]interface{}{
		"idStudent":       1,
		"name":            "Algebra",
		"lecturesVolume":  30,
		"practicesVolume": 20,
		"labsVolume":      10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodDelete, "/api/v1/students/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// No cascade: the subject survives with a now-dangling owner.
	w = api.do(t, http.MethodGet, "/api/v1/subjects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var subjects []models.Subject
	decodeJSON(t, w, &subjects)
	require.Len(t, subjects, 1)
	require.NotNil(t, subjects[0].StudentID)
	assert.Equal(t, int64(1), *subjects[0].StudentID)
}

func TestStudents_List(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(t)

	for _, name := range []string{"Taras", "Lesya"} {
		w := api.do(t, http.MethodPost, "/api/v1/students", token, map[string]interface{}{
			"firstName": name,
			"lastName":  "Kovalenko",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.do(t, http.MethodGet, "/api/v1/students", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var students []models.Student
	decodeJSON(t, w, &students)
	assert.Len(t, students, 2)
}
