package constants

const (
	DefaultInputPath  = "public/household_tax_income_changes_senate_current_law_baseline.csv"
	DefaultOutputPath = "public/household_tax_income_changes_sample.json"

	DefaultSampleFraction = 0.25
	DefaultSeed           = 42

	DefaultPublishMaxAttempts = 3
)

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

type DestinationKind string

const (
	Local DestinationKind = "local"
	S3    DestinationKind = "s3"
	GCS   DestinationKind = "gcs"
)

var validDestinations = []DestinationKind{
	Local,
	S3,
	GCS,
}

func IsValidDestination(destination DestinationKind) bool {
	for _, validDest := range validDestinations {
		if destination == validDest {
			return true
		}
	}

	return false
}
