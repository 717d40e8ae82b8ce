package hotel

// RoomKind tags the fixed room variants of the catalog.
type RoomKind int

const (
	KindSimple RoomKind = iota
	KindDouble
	KindSuite
)

type kindInfo struct {
	label    string
	capacity int
	price    int
}

// Capacity and price are fixed per kind and never vary per room instance.
var kindTable = map[RoomKind]kindInfo{
	KindSimple: {label: "Habitacion simple", capacity: 1, price: 450},
	KindDouble: {label: "Habitacion doble", capacity: 2, price: 900},
	KindSuite:  {label: "Suite", capacity: 4, price: 2500},
}

type Room struct {
	Kind      RoomKind `json:"kind"`
	Number    int      `json:"number"`
	Capacity  int      `json:"capacity"`
	Price     int      `json:"price"`
	Available bool     `json:"available"`
	Balcony   bool     `json:"balcony,omitempty"`
	Jacuzzi   bool     `json:"jacuzzi,omitempty"`
}

// NewRoom builds a room of the given kind. The number is a sequential
// position within one reservation, assigned by the caller as count so far
// plus one, not a hotel-wide identifier.
func NewRoom(kind RoomKind, number int) Room {
	info := kindTable[kind]

	return Room{
		Kind:      kind,
		Number:    number,
		Capacity:  info.capacity,
		Price:     info.price,
		Available: true,
	}
}

func (r Room) Label() string {
	return kindTable[r.Kind].label
}

// Equal compares number, capacity and price only; kind identity and the
// availability flag do not take part.
func (r Room) Equal(other Room) bool {
	return r.Number == other.Number &&
		r.Capacity == other.Capacity &&
		r.Price == other.Price
}

type Client struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ReservationIDs []int  `json:"reservation_ids"`
}

func NewClient(name, email string) *Client {
	//nolint:exhaustruct
	return &Client{
		Name:  name,
		Email: email,
	}
}

// ReservationInput carries everything the parser extracted from one
// document. Rooms are already built and numbered at parse time.
type ReservationInput struct {
	Client    *Client
	Rooms     []Room
	StartDate string
	Nights    int
}

// Reservation is immutable in its derived fields once constructed: EndDate
// is always StartDate plus Nights days and is never recomputed afterwards.
type Reservation struct {
	ID         int    `json:"id"`
	ClientID   int    `json:"client_id"`
	Rooms      []Room `json:"rooms"`
	StartDate  string `json:"start_date"`
	Nights     int    `json:"nights"`
	EndDate    string `json:"end_date"`
	NumRooms   int    `json:"num_rooms"`
	NumPeople  int    `json:"num_people"`
	TotalPrice int    `json:"total_price"`
}
