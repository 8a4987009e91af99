package models

// ImageType classifies the capture source of an image.
type ImageType string

const (
	// ImageTypeStandard is a plain photograph with no capture-angle metadata.
	ImageTypeStandard ImageType = "standard"
	// ImageTypeDrone is a drone capture carrying gimbal/flight angle tags.
	ImageTypeDrone ImageType = "drone"
	// ImageTypeDJIDrone is a drone capture from a DJI camera.
	ImageTypeDJIDrone ImageType = "dji_drone"
	// ImageTypeOrthorectified is imagery already corrected for viewing angle.
	ImageTypeOrthorectified ImageType = "orthorectified"
	// ImageTypeUnknown is an image whose origin could not be determined.
	ImageTypeUnknown ImageType = "unknown"
)

// AngleSource identifies where the camera angle data came from.
type AngleSource string

const (
	AngleSourceEXIF         AngleSource = "exif"
	AngleSourceGeoreference AngleSource = "georeference"
	AngleSourceNone         AngleSource = "none"
)

// CameraAngleReading holds the camera orientation resolved for a loaded
// image, together with the derived correction factor and perpendicularity
// classification. One immutable reading is produced per image.
type CameraAngleReading struct {
	HasAngleData     bool        `json:"has_angle_data"`
	PitchDeg         float64     `json:"pitch_deg"`
	RollDeg          float64     `json:"roll_deg"`
	IsPerpendicular  bool        `json:"is_perpendicular"`
	CorrectionFactor float64     `json:"correction_factor"`
	CameraModel      string      `json:"camera_model,omitempty"`
	ImageType        ImageType   `json:"image_type"`
	Source           AngleSource `json:"source"`
}
