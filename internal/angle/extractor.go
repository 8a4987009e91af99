package angle

import (
	"fmt"
	"strconv"
	"strings"

	"go-area-metrics/pkg/models"
)

// Source is the boundary to an image-metadata collaborator: a tag-name to
// value mapping plus a georeference-presence flag.
type Source interface {
	// Tag returns the raw value of a metadata tag, if present.
	Tag(name string) (string, bool)

	// HasGeoreference reports whether the image carries a coordinate
	// reference system.
	HasGeoreference() bool
}

// TagMap is a map-backed Source for callers that have already decoded
// image metadata into tag/value pairs.
type TagMap struct {
	Tags          map[string]string
	Georeferenced bool
}

func (m TagMap) Tag(name string) (string, bool) {
	value, ok := m.Tags[name]
	return value, ok
}

func (m TagMap) HasGeoreference() bool {
	return m.Georeferenced
}

// Angle tag aliases grouped by axis, in fixed declared order. When several
// aliases for the same axis are present, the last one in this order wins.
var (
	pitchTagAliases = []string{"CameraPitch", "GimbalPitchDegree", "FlightPitchDegree"}
	rollTagAliases  = []string{"CameraRoll", "GimbalRollDegree", "FlightRollDegree"}
)

// Camera identification tags.
const (
	tagMake  = "Make"
	tagModel = "Model"
)

// orthorectifiedModel labels georeferenced imagery that needs no further
// correction.
const orthorectifiedModel = "Orthorectified GeoTIFF"

// Extractor builds a CameraAngleReading from an image metadata source.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	toleranceDeg float64
}

// NewExtractor creates an extractor with the default perpendicularity
// tolerance.
func NewExtractor() *Extractor {
	return NewExtractorWithTolerance(DefaultToleranceDeg)
}

// NewExtractorWithTolerance creates an extractor with a custom
// perpendicularity tolerance in degrees.
func NewExtractorWithTolerance(toleranceDeg float64) *Extractor {
	if toleranceDeg <= 0 {
		toleranceDeg = DefaultToleranceDeg
	}
	return &Extractor{toleranceDeg: toleranceDeg}
}

// Extract resolves the camera orientation for an image. Strategy order:
// drone angle tags first, then the georeference fallback for imagery that
// is already angle-corrected. Missing or malformed metadata degrades
// silently to a reading without angle data; it is never an error.
func (e *Extractor) Extract(src Source) models.CameraAngleReading {
	reading := models.CameraAngleReading{
		IsPerpendicular:  true,
		CorrectionFactor: MinCorrectionFactor,
		ImageType:        models.ImageTypeUnknown,
		Source:           models.AngleSourceNone,
	}
	if src == nil {
		return reading
	}

	if tagReading, ok := e.extractFromTags(src); ok {
		reading = tagReading
	} else if src.HasGeoreference() {
		// A coordinate reference system means the image is already
		// orthorectified: angles are zero by definition.
		reading.HasAngleData = true
		reading.ImageType = models.ImageTypeOrthorectified
		reading.Source = models.AngleSourceGeoreference
		reading.CameraModel = orthorectifiedModel
	}

	// Readings with angle data always run through the correction model,
	// orthorectified ones included: their zero angles yield factor 1.0 but
	// sit outside the perpendicularity tolerance, so downstream they count
	// as corrected.
	if reading.HasAngleData {
		reading.CorrectionFactor = CorrectionFactor(reading.PitchDeg, reading.RollDeg)
		reading.IsPerpendicular = IsPerpendicular(reading.PitchDeg, reading.RollDeg, e.toleranceDeg)
	}

	return reading
}

// extractFromTags scans the declared angle tag aliases. It reports false
// when no angle field is present or any present value fails to parse, so
// the caller can fall through to the next strategy.
func (e *Extractor) extractFromTags(src Source) (models.CameraAngleReading, bool) {
	reading := models.CameraAngleReading{
		Source:    models.AngleSourceEXIF,
		ImageType: models.ImageTypeDrone,
	}

	found := false
	for _, alias := range pitchTagAliases {
		raw, ok := src.Tag(alias)
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return models.CameraAngleReading{}, false
		}
		reading.PitchDeg = value
		found = true
	}
	for _, alias := range rollTagAliases {
		raw, ok := src.Tag(alias)
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return models.CameraAngleReading{}, false
		}
		reading.RollDeg = value
		found = true
	}
	if !found {
		return models.CameraAngleReading{}, false
	}

	reading.HasAngleData = true
	reading.CameraModel = cameraModel(src)
	if strings.Contains(strings.ToUpper(reading.CameraModel), "DJI") {
		reading.ImageType = models.ImageTypeDJIDrone
	}

	return reading, true
}

// cameraModel joins the Make and Model tags the way camera vendors expect
// them to be displayed.
func cameraModel(src Source) string {
	vendor, _ := src.Tag(tagMake)
	model, _ := src.Tag(tagModel)
	return strings.TrimSpace(strings.TrimSpace(vendor) + " " + strings.TrimSpace(model))
}

// Describe renders a human-readable summary of a reading for presentation
// collaborators.
func (e *Extractor) Describe(reading models.CameraAngleReading) string {
	if !reading.HasAngleData {
		return "No angle data available"
	}

	if reading.ImageType == models.ImageTypeOrthorectified {
		return "Orthorectified image - angles already corrected"
	}

	if reading.IsPerpendicular {
		return fmt.Sprintf("Perpendicular capture (Pitch: %.1f°, Roll: %.1f°)",
			reading.PitchDeg, reading.RollDeg)
	}

	correctionPercent := (reading.CorrectionFactor - 1.0) * 100
	return fmt.Sprintf("Angled capture (Pitch: %.1f°, Roll: %.1f°) - %.1f%% correction applied",
		reading.PitchDeg, reading.RollDeg, correctionPercent)
}

// Warn returns an accuracy warning for oblique captures. The second return
// is false when no warning applies: perpendicular shots, missing angle
// data, and corrections below 20%.
func (e *Extractor) Warn(reading models.CameraAngleReading) (string, bool) {
	if !reading.HasAngleData || reading.IsPerpendicular {
		return "", false
	}

	switch {
	case reading.CorrectionFactor > 1.5:
		return "High angle correction applied - consider using perpendicular imagery for maximum accuracy", true
	case reading.CorrectionFactor > 1.2:
		return "Moderate angle correction applied - accuracy reduced compared to perpendicular imagery", true
	default:
		return "", false
	}
}
