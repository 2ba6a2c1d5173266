package uasset

import "fmt"

type EngineVersion int

const (
	VersionUnknown EngineVersion = iota
	VersionUE427
	VersionUE50
	VersionUE51
)

type objectVersion struct {
	legacy int32
	ue4    int32
	ue5    int32
}

var engineObjectVersions = map[EngineVersion]objectVersion{
	VersionUE427: {legacy: -7, ue4: 522},
	VersionUE50:  {legacy: -8, ue4: 522, ue5: 1004},
	VersionUE51:  {legacy: -8, ue4: 522, ue5: 1008},
}

func (v EngineVersion) String() string {
	switch v {
	case VersionUE427:
		return "UE4.27"
	case VersionUE50:
		return "UE5.0"
	case VersionUE51:
		return "UE5.1"
	}
	return fmt.Sprintf("EngineVersion(%d)", int(v))
}

func versionFromObject(o objectVersion) (EngineVersion, error) {
	for v, m := range engineObjectVersions {
		if m == o {
			return v, nil
		}
	}
	return VersionUnknown, fmt.Errorf("%w: legacy %d, UE4 %d, UE5 %d", ErrorUnsupportedVersion, o.legacy, o.ue4, o.ue5)
}
