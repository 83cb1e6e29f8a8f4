package annotations

// Settings are the plugin options for the annotation rules.
type Settings struct {
	// MypyInitReturn allows omitting the constructor's return annotation
	// when at least one argument is annotated, matching mypy's convention.
	MypyInitReturn bool
	// SuppressDummyArgs skips missing-annotation checks for parameters whose
	// name matches the dummy-variable pattern.
	SuppressDummyArgs bool
	// SuppressNoneReturning skips missing-return-annotation checks for
	// bodies that only ever return None.
	SuppressNoneReturning bool
	// AllowStarArgAny permits typing.Any on *args and **kwargs.
	AllowStarArgAny bool
}
