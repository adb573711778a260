package steps

import "net/http"

func (fc *FeatureContext) iSignUpAsWithPassword(username, password string) error {
	if err := fc.setResponse(fc.apiDriver.Signup(fc.unique(username), password)); err != nil {
		return err
	}
	if fc.response.StatusCode == http.StatusCreated {
		fc.userID, _ = fc.data()["user_id"].(string)
	}
	return nil
}

func (fc *FeatureContext) aUserSignedUpWithPassword(username, password string) error {
	if err := fc.iSignUpAsWithPassword(username, password); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iAmLoggedInAs(username string) error {
	return fc.aUserSignedUpWithPassword(username, "secret")
}

func (fc *FeatureContext) iLogInAsWithPassword(username, password string) error {
	if err := fc.setResponse(fc.apiDriver.Login(fc.unique(username), password)); err != nil {
		return err
	}
	if fc.response.StatusCode == http.StatusOK {
		fc.userID, _ = fc.data()["user_id"].(string)
	}
	return nil
}

func (fc *FeatureContext) iLogOut() error {
	return fc.setResponse(fc.apiDriver.Logout(fc.userID))
}

func (fc *FeatureContext) iGetTheSessionState() error {
	return fc.setResponse(fc.apiDriver.GetState(fc.userID))
}

func (fc *FeatureContext) theResponseShouldContainAUserID() error {
	userID, ok := fc.data()["user_id"].(string)
	fc.require.True(ok, "user_id should be a string")
	fc.require.NotEmpty(userID)
	return nil
}

func (fc *FeatureContext) theSessionStatusShouldBe(status string) error {
	session, ok := fc.data()["session"].(map[string]any)
	fc.require.True(ok, "session should be an object")
	fc.require.Equal(status, session["status"])
	return nil
}
