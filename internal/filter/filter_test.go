package filter_test

import (
	"net/url"
	"testing"

	"github.com/localnerve/materialsdb/internal/database/dbtest"
	"github.com/localnerve/materialsdb/internal/filter"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fields = []filter.Field{
	{Param: "materialType", Column: "material_type", Comparator: filter.Equals},
	{Param: "tensileStrengthMin", Column: "tensile_strength", Comparator: filter.AtLeast},
	{Param: "tensileStrengthMax", Column: "tensile_strength", Comparator: filter.AtMost},
	{Param: "fdaApproved", Column: "fda_approved", Comparator: filter.IsTrue},
	{Param: "search", Column: "name", Comparator: filter.ContainsFold},
}

func TestParseSkipsEmptyAndFalse(t *testing.T) {
	criteria, err := filter.Parse(fields, url.Values{
		"materialType":       {""},
		"fdaApproved":        {"false"},
		"tensileStrengthMin": {" 40 "},
		"unrelated":          {"x"},
	})
	require.NoError(t, err)
	require.Len(t, criteria, 1)
	assert.Equal(t, "tensileStrengthMin", criteria[0].Field.Param)
	assert.Equal(t, 40.0, criteria[0].Value)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := filter.Parse(fields, url.Values{
		"tensileStrengthMin": {"forty"},
		"tensileStrengthMax": {"NaN"},
		"fdaApproved":        {"maybe"},
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Fields, "tensileStrengthMin")
	assert.Contains(t, verr.Fields, "tensileStrengthMax")
	assert.Contains(t, verr.Fields, "fdaApproved")
}

func TestParseRejectsInvertedRange(t *testing.T) {
	_, err := filter.Parse(fields, url.Values{
		"tensileStrengthMin": {"60"},
		"tensileStrengthMax": {"40"},
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must not exceed tensileStrengthMax", verr.Fields["tensileStrengthMin"])
}

func TestApplyConjunction(t *testing.T) {
	db := dbtest.New(t)

	dbtest.CreateMaterial(t, db, &models.Material{Name: "Cycolac ABS MG47", MaterialType: "ABS", TensileStrength: dbtest.Ptr(45.0), FDAApproved: true})
	dbtest.CreateMaterial(t, db, &models.Material{Name: "Weak ABS", MaterialType: "ABS", TensileStrength: dbtest.Ptr(30.0), FDAApproved: true})
	dbtest.CreateMaterial(t, db, &models.Material{Name: "Unknown ABS", MaterialType: "ABS"})
	dbtest.CreateMaterial(t, db, &models.Material{Name: "Lexan PC", MaterialType: "PC", TensileStrength: dbtest.Ptr(65.0)})

	criteria, err := filter.Parse(fields, url.Values{
		"materialType":       {"ABS"},
		"tensileStrengthMin": {"40"},
	})
	require.NoError(t, err)

	var found []models.Material
	require.NoError(t, filter.Apply(db.Model(&models.Material{}), criteria).Find(&found).Error)

	require.Len(t, found, 1)
	assert.Equal(t, "Cycolac ABS MG47", found[0].Name)
	for _, m := range found {
		assert.Equal(t, "ABS", m.MaterialType)
		require.NotNil(t, m.TensileStrength)
		assert.GreaterOrEqual(t, *m.TensileStrength, 40.0)
	}
}

func TestApplySearchIsCaseInsensitiveAndLiteral(t *testing.T) {
	db := dbtest.New(t)

	dbtest.CreateMaterial(t, db, &models.Material{Name: "Cycolac ABS MG47"})
	dbtest.CreateMaterial(t, db, &models.Material{Name: "Grade 100% recycled"})
	dbtest.CreateMaterial(t, db, &models.Material{Name: "Grade 1000 virgin"})

	search := func(term string) []string {
		criteria, err := filter.Parse(fields, url.Values{"search": {term}})
		require.NoError(t, err)

		var names []string
		require.NoError(t, filter.Apply(db.Model(&models.Material{}), criteria).Order("id").Pluck("name", &names).Error)
		return names
	}

	assert.Equal(t, []string{"Cycolac ABS MG47"}, search("cycolac"))
	assert.Equal(t, []string{"Cycolac ABS MG47"}, search("ABS mg"))
	assert.Equal(t, []string{"Grade 100% recycled"}, search("100%"))
	assert.Empty(t, search("Grade_1"))
}

func TestParsePage(t *testing.T) {
	page, err := filter.ParsePage(url.Values{}, 50, 200)
	require.NoError(t, err)
	assert.Equal(t, filter.Page{Limit: 50, Offset: 0}, page)

	page, err = filter.ParsePage(url.Values{"limit": {"12"}, "offset": {"12"}}, 50, 200)
	require.NoError(t, err)
	assert.Equal(t, filter.Page{Limit: 12, Offset: 12}, page)

	page, err = filter.ParsePage(url.Values{"limit": {"5000"}}, 50, 200)
	require.NoError(t, err)
	assert.Equal(t, 200, page.Limit)

	_, err = filter.ParsePage(url.Values{"limit": {"0"}, "offset": {"-1"}}, 50, 200)
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "limit")
	assert.Contains(t, verr.Fields, "offset")
}
