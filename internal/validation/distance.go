package validation

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/jonathan/harvest-validator/internal/types"
)

// ProximityThresholdMeters is the distance under which two farms are
// considered suspiciously close.
const ProximityThresholdMeters = 200

type farmPair struct {
	first, second string
}

// ValidateFarmDistances reports farms whose recorded locations are more than
// 0 and less than 200 meters apart. Each unordered farm pair appears once, as
// "[<farm A record> ** is near ** <farm B record>]" where each side is the
// first record carrying that farm_id. Pairs are listed in the order found.
func (v *Validator) ValidateFarmDistances() (types.ViolationReport, error) {
	n := len(v.measurements)
	keys := make([]string, n)
	points := make([]s2.LatLng, n)
	firstRecord := make(map[string]int, n)

	for i, m := range v.measurements {
		farmID, err := requireField(m, i, types.FieldFarmID)
		if err != nil {
			return types.ViolationReport{}, err
		}
		keys[i] = identityKey(farmID)
		if _, ok := firstRecord[keys[i]]; !ok {
			firstRecord[keys[i]] = i
		}

		if points[i], err = recordLocation(m, i); err != nil {
			return types.ViolationReport{}, err
		}
	}

	seen := make(map[farmPair]struct{})
	var pairs []farmPair

	// Distance is symmetric and zero on the diagonal, so scanning j > i finds
	// every pair the full n*n scan would.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := DistanceMeters(points[i], points[j])
			if d <= 0 || d >= ProximityThresholdMeters {
				continue
			}
			pair := farmPair{first: keys[i], second: keys[j]}
			reversed := farmPair{first: keys[j], second: keys[i]}
			if _, ok := seen[pair]; ok {
				continue
			}
			if _, ok := seen[reversed]; ok {
				continue
			}
			seen[pair] = struct{}{}
			pairs = append(pairs, pair)
		}
	}

	flagged := make([]any, 0, len(pairs))
	for _, pair := range pairs {
		description, err := describePair(v.measurements[firstRecord[pair.first]], v.measurements[firstRecord[pair.second]])
		if err != nil {
			return types.ViolationReport{}, err
		}
		flagged = append(flagged, description)
	}

	return types.NewViolationReport(types.RuleFarmDistance, flagged), nil
}

func describePair(a, b *types.Measurement) (string, error) {
	left, err := json.Marshal(a)
	if err != nil {
		return "", &Error{Message: "failed to encode farm record", Cause: err}
	}
	right, err := json.Marshal(b)
	if err != nil {
		return "", &Error{Message: "failed to encode farm record", Cause: err}
	}
	return fmt.Sprintf("[%s ** is near ** %s]", left, right), nil
}
