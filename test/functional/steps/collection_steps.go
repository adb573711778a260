package steps

import (
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// collectionDraft turns a "name | type | flags | constraint" table into the
// body of a create collection request. Flags are comma separated and a
// constraint reads "<order> <value>".
func (fc *FeatureContext) collectionDraft(name string, table *godog.Table) map[string]any {
	fields := []map[string]any{}
	for _, row := range table.Rows[1:] {
		field := map[string]any{
			"name":  row.Cells[0].Value,
			"type":  row.Cells[1].Value,
			"flags": []string{},
		}

		if flags := strings.TrimSpace(row.Cells[2].Value); flags != "" {
			field["flags"] = strings.Split(flags, ",")
		}

		constraints := []map[string]string{}
		if constraint := strings.TrimSpace(row.Cells[3].Value); constraint != "" {
			order, value, found := strings.Cut(constraint, " ")
			fc.require.True(found, "constraint should read '<order> <value>'")
			constraints = append(constraints, map[string]string{"order": order, "value": strings.TrimSpace(value)})
		}
		field["value_constraints"] = constraints

		fields = append(fields, field)
	}

	return map[string]any{
		"name":   fc.unique(name),
		"fields": fields,
	}
}

func (fc *FeatureContext) iCreateTheCollectionWithFields(name string, table *godog.Table) error {
	return fc.setResponse(fc.apiDriver.CreateCollection(fc.userID, fc.collectionDraft(name, table)))
}

func (fc *FeatureContext) theCollectionExistsWithFields(name string, table *godog.Table) error {
	if err := fc.iCreateTheCollectionWithFields(name, table); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iGetTheCollection(name string) error {
	return fc.setResponse(fc.apiDriver.GetCollection(fc.userID, fc.unique(name)))
}

func (fc *FeatureContext) iListAllCollections() error {
	return fc.setResponse(fc.apiDriver.ListCollections(fc.userID))
}

func (fc *FeatureContext) iListAllCollectionsWithoutASession() error {
	return fc.setResponse(fc.apiDriver.ListCollections(""))
}

func (fc *FeatureContext) theListShouldContainTheCollection(name string) error {
	collections, ok := fc.data()["data"].([]any)
	fc.require.True(ok, "data should be a list")

	for _, item := range collections {
		if collection, ok := item.(map[string]any); ok && collection["name"] == fc.unique(name) {
			return nil
		}
	}
	fc.require.Failf("collection not listed", "expected %s in %v", fc.unique(name), collections)
	return nil
}

func (fc *FeatureContext) theCollectionShouldBeSchemaless() error {
	fc.require.Equal(true, fc.data()["schemaless"])
	return nil
}

func (fc *FeatureContext) field(name string) map[string]any {
	fields, ok := fc.data()["fields"].([]any)
	fc.require.True(ok, "fields should be a list")

	for _, item := range fields {
		if field, ok := item.(map[string]any); ok && field["name"] == name {
			return field
		}
	}
	fc.require.Failf("field not found", "expected field %s in %v", name, fields)
	return nil
}

func (fc *FeatureContext) theFieldShouldBeDisplayedAs(name, displayType string) error {
	fc.require.Equal(displayType, fc.field(name)["display_type"])
	return nil
}

func (fc *FeatureContext) theFieldShouldBeNullable(name string) error {
	fc.require.Equal(true, fc.field(name)["nullable"])
	return nil
}

func (fc *FeatureContext) theFieldShouldCarryTheConstraint(name, constraint string) error {
	fc.require.Contains(fc.field(name)["constraints"], constraint)
	return nil
}
