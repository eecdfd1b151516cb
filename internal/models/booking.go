package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// BookingInput is the untyped booking payload as submitted by clients.
// It never escapes past NormalizeBooking / OrderNotes.
type BookingInput map[string]interface{}

// BookingData is the flattened, all-string booking record stored alongside
// a verified payment and fed into the confirmation email.
type BookingData struct {
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`
	Phone string `json:"phone" firestore:"phone"`

	RoomType string `json:"roomType" firestore:"roomType"`
	FromDate string `json:"fromDate" firestore:"fromDate"`
	ToDate   string `json:"toDate" firestore:"toDate"`

	Guests   string `json:"guests" firestore:"guests"`
	Adults   string `json:"adults" firestore:"adults"`
	Children string `json:"children" firestore:"children"`
	Infants  string `json:"infants" firestore:"infants"`

	BookingID string `json:"bookingId" firestore:"bookingId"`
	UserID    string `json:"userId" firestore:"userId"`

	RoomPrice      string `json:"roomPrice" firestore:"roomPrice"`
	RoomSubtotal   string `json:"roomSubtotal" firestore:"roomSubtotal"`
	MenuTotal      string `json:"menuTotal" firestore:"menuTotal"`
	TotalAmount    string `json:"totalAmount" firestore:"totalAmount"`
	NumberOfNights string `json:"numberOfNights" firestore:"numberOfNights"`

	SelectedItemsCount string `json:"selectedItemsCount" firestore:"selectedItemsCount"`
	RawSelectedItems   string `json:"rawSelectedItems" firestore:"rawSelectedItems"`

	DataFormat  string `json:"dataFormat" firestore:"dataFormat"`
	ProcessedAt string `json:"processedAt" firestore:"processedAt"`
	PaymentID   string `json:"paymentId" firestore:"paymentId"`
	OrderID     string `json:"orderId" firestore:"orderId"`
}

const defaultRoomType = "Heritage Room"

// Razorpay caps order notes at 15 entries of 50 characters each.
const (
	maxNoteFields = 15
	maxNoteLen    = 50
)

// NormalizeBooking flattens an arbitrary booking payload into a BookingData.
// It is total: any input shape, including nil, yields a fully populated
// record with per-field defaults.
func NormalizeBooking(in BookingInput, orderID, paymentID string) BookingData {
	d := BookingData{
		Name:  fullName(in),
		Email: in.str("email"),
		Phone: in.str("phone"),

		RoomType: in.strOr(defaultRoomType, "roomType"),
		FromDate: in.str("fromDate", "checkIn"),
		ToDate:   in.str("toDate", "checkOut"),

		Guests:   guestCount(in),
		Adults:   in.strOr("1", "adults"),
		Children: in.strOr("0", "children"),
		Infants:  in.strOr("0", "infants"),

		BookingID: in.str("bookingId"),
		UserID:    in.str("userId", "firestoreId", "bookingId"),

		RoomPrice:      in.strOr("0", "roomPrice"),
		RoomSubtotal:   in.strOr("0", "roomSubtotal", "roomTotal"),
		MenuTotal:      in.strOr("0", "menuTotal"),
		TotalAmount:    in.strOr("0", "totalAmount", "totalCalculated"),
		NumberOfNights: in.strOr("1", "numberOfNights", "nights"),

		SelectedItemsCount: "0",
		RawSelectedItems:   "[]",

		DataFormat:  "complex",
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
		PaymentID:   paymentID,
		OrderID:     orderID,
	}

	if items, ok := in["selectedItems"]; ok && items != nil {
		if arr, ok := items.([]interface{}); ok {
			d.SelectedItemsCount = strconv.Itoa(len(arr))
		}
		d.RawSelectedItems = Stringify(items)
	}
	if truthy(in["name"]) {
		d.DataFormat = "simple"
	}
	return d
}

// OrderNotes builds the bounded annotation set attached to a gateway order:
// a fixed priority list of booking fields, empties dropped, values truncated
// to maxNoteLen, at most maxNoteFields entries.
func OrderNotes(in BookingInput) map[string]interface{} {
	notes := make(map[string]interface{})
	if in == nil {
		return notes
	}
	fields := []struct {
		key   string
		value string
	}{
		{"name", fullName(in)},
		{"email", in.str("email")},
		{"phone", in.str("phone")},
		{"bookingId", in.str("bookingId")},
		{"userId", in.str("userId", "firestoreId")},
		{"roomType", in.strOr(defaultRoomType, "roomType")},
		{"fromDate", in.str("fromDate", "checkIn")},
		{"toDate", in.str("toDate", "checkOut")},
		{"guests", in.strOr("1", "guests", "adults")},
		{"nights", in.strOr("1", "nights", "numberOfNights")},
		{"totalAmount", in.strOr("0", "totalAmount", "totalCalculated")},
	}
	for _, f := range fields {
		if len(notes) >= maxNoteFields {
			break
		}
		v := f.value
		if len(v) > maxNoteLen {
			v = v[:maxNoteLen]
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		notes[f.key] = v
	}
	return notes
}

// Stringify renders any JSON-decoded value as a string. Objects and arrays
// are JSON-encoded, with a placeholder when encoding fails; nil becomes "".
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "[Complex Object]"
		}
		return string(b)
	}
}

// str returns the first truthy key stringified, or "".
func (in BookingInput) str(keys ...string) string {
	return in.strOr("", keys...)
}

// strOr returns the first truthy key stringified, or def.
func (in BookingInput) strOr(def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := in[k]; ok && truthy(v) {
			return Stringify(v)
		}
	}
	return def
}

func fullName(in BookingInput) string {
	if truthy(in["name"]) {
		return Stringify(in["name"])
	}
	first := in.str("firstName")
	last := in.str("lastName")
	return strings.TrimSpace(first + " " + last)
}

func guestCount(in BookingInput) string {
	if truthy(in["guests"]) {
		return Stringify(in["guests"])
	}
	total := intFrom(in["adults"]) + intFrom(in["children"]) + intFrom(in["infants"])
	return strconv.Itoa(total)
}

func intFrom(v interface{}) int {
	s := strings.TrimSpace(Stringify(v))
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// truthy mirrors the loose presence checks of the client contract: absent,
// nil, "", 0 and false all count as missing.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
