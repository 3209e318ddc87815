package geo

// NewResolverFromYAMLForTest exposes gazetteer decoding for tests.
var NewResolverFromYAMLForTest = newResolverFromYAML
