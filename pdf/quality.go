package pdf

import "fmt"

// Quality selects how aggressively Ghostscript downsamples a document.
type Quality string

const (
	// QualityExtreme favors smallest output (gs /screen preset).
	QualityExtreme Quality = "extreme"
	// QualityNormal is the balanced default (gs /ebook preset).
	QualityNormal Quality = "normal"
	// QualityLow applies minimal compression (gs /printer preset).
	QualityLow Quality = "low"
)

var qualityPresets = map[Quality]string{
	QualityExtreme: "screen",
	QualityNormal:  "ebook",
	QualityLow:     "printer",
}

// ParseQuality validates a user-supplied quality level.
func ParseQuality(s string) (Quality, error) {
	q := Quality(s)
	if _, ok := qualityPresets[q]; !ok {
		return "", fmt.Errorf("unknown quality level %q (want extreme, normal or low)", s)
	}
	return q, nil
}

// Preset returns the Ghostscript PDFSETTINGS name for q.
func (q Quality) Preset() string {
	return qualityPresets[q]
}
