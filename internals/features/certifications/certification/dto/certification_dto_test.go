package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "certassoc_backend/internals/features/certifications/certification/model"
)

func TestResolveMethodSubjectsDropsStaleIndices(t *testing.T) {
	subjects := []model.ExamSubject{
		{Name: "소방안전관리론"},
		{Name: "소방관계법규"},
	}
	methods := []model.ExamMethod{
		{Type: model.MethodWritten, Questions: 60, Time: 90, Subjects: []int{0, 1, 5, -1}},
		{Type: model.MethodPractical, Subjects: []int{1}},
	}

	got := ResolveMethodSubjects(subjects, methods)

	require.Len(t, got, 2)
	assert.Equal(t, []int{0, 1}, got[0].Subjects)
	assert.Equal(t, []string{"소방안전관리론", "소방관계법규"}, got[0].SubjectNames)
	assert.Equal(t, []string{"소방관계법규"}, got[1].SubjectNames)
}

func TestResolveMethodSubjectsEmptySubjectList(t *testing.T) {
	methods := []model.ExamMethod{
		{Type: model.MethodWritten, Subjects: []int{0}},
	}

	got := ResolveMethodSubjects(nil, methods)

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Subjects)
	assert.Empty(t, got[0].SubjectNames)
}

func TestCreateRequestValidateMethods(t *testing.T) {
	req := CertificationCreateRequest{
		CertificationExamMethods: []model.ExamMethod{{Type: "면접"}},
	}
	assert.NotEmpty(t, req.ValidateMethods())

	req.CertificationExamMethods = []model.ExamMethod{
		{Type: model.MethodWritten},
		{Type: model.MethodPractical},
	}
	assert.Empty(t, req.ValidateMethods())
}

func TestCreateRequestNormalizeDefaultsStatus(t *testing.T) {
	req := CertificationCreateRequest{
		CertificationName:               "  테스트자격증  ",
		CertificationRegistrationNumber: " T-001 ",
	}
	req.Normalize()

	assert.Equal(t, "테스트자격증", req.CertificationName)
	assert.Equal(t, "T-001", req.CertificationRegistrationNumber)
	assert.Equal(t, model.StatusDraft, req.CertificationStatus)
}

// Whatever shape the admin submits must come back out of the display parser
// with the same category/detail list.
func TestPassingCriteriaSurvivesBothWriteShapes(t *testing.T) {
	jsonForm := `{"items":[{"category":"필기시험","details":["60점 이상"]}]}`
	legacyForm := "필기시험: 60점 이상"

	for _, raw := range []string{jsonForm, legacyForm} {
		m := model.CertificationModel{
			CertificationName:            "테스트자격증",
			CertificationPassingCriteria: &raw,
		}
		resp := ToCertificationResponse(&m)

		require.NotNil(t, resp.CertificationPassingCriteria)
		assert.Equal(t, raw, *resp.CertificationPassingCriteria, "stored string must not be normalised")
		require.Len(t, resp.PassingCriteriaItems, 1)
		assert.Equal(t, "필기시험", resp.PassingCriteriaItems[0].Category)
		assert.Equal(t, []string{"60점 이상"}, resp.PassingCriteriaItems[0].Details)
	}
}
