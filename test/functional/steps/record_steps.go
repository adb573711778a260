package steps

import (
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// values reads a "field | value" table.
func values(table *godog.Table) map[string]string {
	result := make(map[string]string, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		result[row.Cells[0].Value] = row.Cells[1].Value
	}
	return result
}

func (fc *FeatureContext) iCreateTheRecordInWithValues(name, collection string, table *godog.Table) error {
	return fc.setResponse(fc.apiDriver.CreateRecord(fc.userID, fc.unique(collection), name, values(table)))
}

func (fc *FeatureContext) theRecordExistsInWithValues(name, collection string, table *godog.Table) error {
	if err := fc.iCreateTheRecordInWithValues(name, collection, table); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iValidateTheRecordInWithValues(name, collection string, table *godog.Table) error {
	return fc.setResponse(fc.apiDriver.ValidateRecord(fc.userID, fc.unique(collection), name, values(table)))
}

func (fc *FeatureContext) iUpdateTheRecordInWithValues(name, collection string, table *godog.Table) error {
	return fc.setResponse(fc.apiDriver.UpdateRecord(fc.userID, fc.unique(collection), name, values(table)))
}

func (fc *FeatureContext) iDeleteTheRecordIn(name, collection string) error {
	return fc.setResponse(fc.apiDriver.DeleteRecord(fc.userID, fc.unique(collection), name))
}

func (fc *FeatureContext) iListTheRecordsOf(collection string) error {
	return fc.setResponse(fc.apiDriver.ListRecords(fc.userID, fc.unique(collection)))
}

func (fc *FeatureContext) iPrepareANewRecordIn(name, collection string) error {
	return fc.setResponse(fc.apiDriver.NewRecord(fc.userID, fc.unique(collection), name))
}

func (fc *FeatureContext) listedRecord(name string) (map[string]any, bool) {
	records, ok := fc.data()["data"].([]any)
	fc.require.True(ok, "data should be a list")

	for _, item := range records {
		if record, ok := item.(map[string]any); ok && record["name"] == name {
			return record, true
		}
	}
	return nil, false
}

func (fc *FeatureContext) theListShouldContainTheRecordWithSetTo(name, field, value string) error {
	record, found := fc.listedRecord(name)
	fc.require.True(found, "record %s should be listed", name)

	known, ok := record["known_fields"].(map[string]any)
	fc.require.True(ok, "known_fields should be an object")
	entry, ok := known[field].(map[string]any)
	fc.require.True(ok, "field %s should be known", field)
	fc.require.Equal(value, entry["value"])
	return nil
}

func (fc *FeatureContext) theListShouldNotContainTheRecord(name string) error {
	_, found := fc.listedRecord(name)
	fc.require.False(found, "record %s should not be listed", name)
	return nil
}

func (fc *FeatureContext) theRecordShouldBeInvalidOn(field string) error {
	data := fc.data()
	fc.require.Equal(false, data["valid"])

	fields, ok := data["fields"].(map[string]any)
	fc.require.True(ok, "fields should be an object")
	fc.require.Contains(fields, field)
	return nil
}

func (fc *FeatureContext) theErrorShouldMentionTheField(field string) error {
	fields, ok := fc.data()["fields"].(map[string]any)
	fc.require.True(ok, "fields should be an object")
	fc.require.Contains(fields, field)
	return nil
}

func (fc *FeatureContext) theRecordShouldHaveTheFields(names string) error {
	expected := strings.Split(names, ",")
	for i := range expected {
		expected[i] = strings.TrimSpace(expected[i])
	}

	fields, ok := fc.data()["fields"].([]any)
	fc.require.True(ok, "fields should be a list")
	actual := make([]string, len(fields))
	for i, field := range fields {
		actual[i], _ = field.(string)
	}
	fc.require.Equal(expected, actual)
	return nil
}
