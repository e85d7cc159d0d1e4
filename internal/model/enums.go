package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// MemberSelectorAll selects every roster member at once.
const MemberSelectorAll = "all"
