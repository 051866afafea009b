package domain

import "strings"

// Container is one of the Minecraft server containers the bot may operate on.
// The value is the container name known to the engine.
type Container string

const (
	Velocity Container = "velocity"
	Creative Container = "creative"
	Survival Container = "survival"
	OneBlock Container = "oneblock"
	SkyBlock Container = "skyblock"
)

// registry holds every valid container in declaration order.
var registry = [...]Container{Velocity, Creative, Survival, OneBlock, SkyBlock}

// Containers returns all valid containers in declaration order.
func Containers() []Container {
	out := make([]Container, len(registry))
	copy(out, registry[:])
	return out
}

// LookupContainer reports whether name is exactly the canonical name of a valid container.
func LookupContainer(name string) (Container, bool) {
	for _, c := range registry {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// ParseContainer normalizes user input and resolves it to a valid container.
func ParseContainer(s string) (Container, error) {
	if c, ok := LookupContainer(strings.ToLower(strings.TrimSpace(s))); ok {
		return c, nil
	}
	return "", ErrUnknownContainer
}

func (c Container) String() string {
	return string(c)
}

// ContainerStatuses maps a container to the human readable status reported by the engine,
// e.g. "Up 3 hours" or "Exited (0) 2 minutes ago".
type ContainerStatuses map[Container]string

// StatusOf returns the engine status of c, or MissingStatus when the engine does not know it.
func (s ContainerStatuses) StatusOf(c Container) string {
	if status, ok := s[c]; ok {
		return status
	}
	return MissingStatus
}

// MissingStatus is displayed for containers the engine did not report.
const MissingStatus = "Missing"
