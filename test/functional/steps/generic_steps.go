package steps

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.setResponse(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	data := fc.data()

	fc.require.Equal("success", data["status"], "Status should be 'success'")
	fc.require.NotEmpty(data["version"], "version should be present")
	fc.require.NotEmpty(data["commit_hash"], "commit_hash should be present")
	fc.require.NotEmpty(data["instance_id"], "instance_id should be present")
	return nil
}
