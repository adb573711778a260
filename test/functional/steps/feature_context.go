package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"cms-console/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	userID       string
	suffix       string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Session steps
	ctx.When(`^I sign up as "([^"]*)" with password "([^"]*)"$`, fc.iSignUpAsWithPassword)
	ctx.Given(`^a user "([^"]*)" signed up with password "([^"]*)"$`, fc.aUserSignedUpWithPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, fc.iAmLoggedInAs)
	ctx.When(`^I log in as "([^"]*)" with password "([^"]*)"$`, fc.iLogInAsWithPassword)
	ctx.When(`^I log out$`, fc.iLogOut)
	ctx.When(`^I get the session state$`, fc.iGetTheSessionState)
	ctx.Then(`^the response should contain a user id$`, fc.theResponseShouldContainAUserID)
	ctx.Then(`^the session status should be "([^"]*)"$`, fc.theSessionStatusShouldBe)

	// Collection steps
	ctx.When(`^I create the collection "([^"]*)" with fields:$`, fc.iCreateTheCollectionWithFields)
	ctx.Given(`^the collection "([^"]*)" exists with fields:$`, fc.theCollectionExistsWithFields)
	ctx.When(`^I get the collection "([^"]*)"$`, fc.iGetTheCollection)
	ctx.When(`^I list all collections$`, fc.iListAllCollections)
	ctx.When(`^I list all collections without a session$`, fc.iListAllCollectionsWithoutASession)
	ctx.Then(`^the list should contain the collection "([^"]*)"$`, fc.theListShouldContainTheCollection)
	ctx.Then(`^the collection should be schemaless$`, fc.theCollectionShouldBeSchemaless)
	ctx.Then(`^the field "([^"]*)" should be displayed as "([^"]*)"$`, fc.theFieldShouldBeDisplayedAs)
	ctx.Then(`^the field "([^"]*)" should be nullable$`, fc.theFieldShouldBeNullable)
	ctx.Then(`^the field "([^"]*)" should carry the constraint "([^"]*)"$`, fc.theFieldShouldCarryTheConstraint)

	// Record steps
	ctx.When(`^I create the record "([^"]*)" in "([^"]*)" with values:$`, fc.iCreateTheRecordInWithValues)
	ctx.Given(`^the record "([^"]*)" exists in "([^"]*)" with values:$`, fc.theRecordExistsInWithValues)
	ctx.When(`^I validate the record "([^"]*)" in "([^"]*)" with values:$`, fc.iValidateTheRecordInWithValues)
	ctx.When(`^I update the record "([^"]*)" in "([^"]*)" with values:$`, fc.iUpdateTheRecordInWithValues)
	ctx.When(`^I delete the record "([^"]*)" in "([^"]*)"$`, fc.iDeleteTheRecordIn)
	ctx.When(`^I list the records of "([^"]*)"$`, fc.iListTheRecordsOf)
	ctx.When(`^I prepare a new record "([^"]*)" in "([^"]*)"$`, fc.iPrepareANewRecordIn)
	ctx.Then(`^the list should contain the record "([^"]*)" with "([^"]*)" set to "([^"]*)"$`, fc.theListShouldContainTheRecordWithSetTo)
	ctx.Then(`^the list should not contain the record "([^"]*)"$`, fc.theListShouldNotContainTheRecord)
	ctx.Then(`^the record should be invalid on "([^"]*)"$`, fc.theRecordShouldBeInvalidOn)
	ctx.Then(`^the error should mention the field "([^"]*)"$`, fc.theErrorShouldMentionTheField)
	ctx.Then(`^the record should have the fields "([^"]*)"$`, fc.theRecordShouldHaveTheFields)

	// Field steps
	ctx.When(`^I validate the value '([^']*)' as "([^"]*)" with nullable "(true|false)" and any "(true|false)"$`, fc.iValidateTheValueAs)
	ctx.Then(`^the value should be reported as "(valid|invalid)"$`, fc.theValueShouldBeReportedAs)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if fc.response != nil {
			fc.response.Body.Close()
		}
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.userID = ""
	fc.suffix = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// unique scopes a name to the running scenario, the content service keeps
// users and collections between scenarios.
func (fc *FeatureContext) unique(name string) string {
	return name + "_" + fc.suffix
}

func (fc *FeatureContext) setResponse(response *http.Response, err error) error {
	fc.require.NoError(err)
	if fc.response != nil {
		fc.response.Body.Close()
	}
	fc.response = response
	fc.responseData = nil
	return nil
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

// data decodes the current response once and keeps it for later steps.
func (fc *FeatureContext) data() map[string]any {
	if fc.responseData == nil {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
		fc.responseData = data
	}
	return fc.responseData
}
