package steps

func (fc *FeatureContext) iValidateTheValueAs(value, fieldType, nullable, isAny string) error {
	return fc.setResponse(fc.apiDriver.ValidateField(value, fieldType, nullable == "true", isAny == "true"))
}

func (fc *FeatureContext) theValueShouldBeReportedAs(result string) error {
	data := fc.data()
	fc.require.Equal(result == "valid", data["valid"], "reason: %v", data["reason"])
	return nil
}
