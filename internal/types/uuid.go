package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex veh_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

// initializeSID initializes the shortid generator once
func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short ID with a prefix.
// Total length is capped at 12 characters, e.g., `TD-XY12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all entities

	UUID_PREFIX_VEHICLE            = "veh"
	UUID_PREFIX_FAQ                = "faq"
	UUID_PREFIX_FAQ_QUESTION       = "faqq"
	UUID_PREFIX_PROMOTION          = "promo"
	UUID_PREFIX_TESTIMONIAL        = "tstm"
	UUID_PREFIX_TEST_DRIVE         = "td"
	UUID_PREFIX_CONTACT_SUBMISSION = "contact"
	UUID_PREFIX_CUSTOM_SEARCH      = "csr"

	// SHORT_ID_PREFIX_BOOKING prefixes the human readable booking
	// reference handed to test drive customers.
	SHORT_ID_PREFIX_BOOKING = "TD-"
)
