package upstream

// ServerEntry is one entry of the server listing.
type ServerEntry struct {
	ID         string   `json:"id"` // 24-hex foreign id
	ServerCode string   `json:"serverCode"`
	ServerName string   `json:"serverName"`
	Region     string   `json:"serverRegion"` // "Asia", "Europe", "US_North"
	IsActive   bool     `json:"isActive"`
	Scenery    string   `json:"scenery"`
	Language   string   `json:"language"`
	Tags       []string `json:"tags"`
}

// DispatchPostEntry is one entry of the dispatch post listing for a server.
type DispatchPostEntry struct {
	ID             string   `json:"id"` // 24-hex foreign id
	Name           string   `json:"name"`
	PointName      string   `json:"stationName"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Difficulty     int      `json:"difficultyLevel"` // 1..5
	MainImageURL   string   `json:"mainImageURL"`
	DetailImageURL string   `json:"additionalImage1URL"`
	DispatchedBy   []Player `json:"dispatchedBy"`
}

// Player identifies a human player by platform id.
type Player struct {
	SteamID string `json:"steamId"`
}

// TrainEntry is one live run from the active-train listing.
type TrainEntry struct {
	RunID        string   `json:"runId"`
	TrainNoLocal string   `json:"trainNoLocal"`
	TrainName    string   `json:"trainName"`
	TrainType    string   `json:"trainType"` // 3-char code
	StartStation string   `json:"startStation"`
	EndStation   string   `json:"endStation"`
	Vehicles     []string `json:"vehicles"`
	Driver       *Player  `json:"driverSteamId,omitempty"`
	TrainData    struct {
		Latitude          float64 `json:"latititute"` // upstream typo preserved
		Longitude         float64 `json:"longitute"`
		VelocityKmh       float64 `json:"velocity"`
		SignalInFront     string  `json:"signalInFront"` // "<name>@<extra>", empty when none
		DistanceToSignalM float64 `json:"distanceToSignalInFront"`
		SignalSpeedLimit  *int    `json:"signalInFrontSpeed"`
		InBorderStationID string  `json:"inBorderStationArea"`
	} `json:"trainData"`
}

// PositionEntry is one row of the dedicated position listing. The listing is
// cheaper than the full train listing and drives the 4 s position frames.
type PositionEntry struct {
	RunID       string  `json:"runId"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	VelocityKmh float64 `json:"velocity"`
}

// TimetableEntry is the full schedule of one run.
type TimetableEntry struct {
	RunID        string         `json:"runId"`
	TrainNoLocal string         `json:"trainNoLocal"`
	TrainName    string         `json:"trainName"`
	TrainType    string         `json:"trainType"`
	ContinuesAs  string         `json:"continuesAs"` // train number of the follow-on run, "" when none
	Rows         []TimetableRow `json:"timetable"`
}

// TimetableRow is one scheduled stop of a run.
type TimetableRow struct {
	PointForeignID string  `json:"pointId"`
	PointName      string  `json:"nameOfPoint"`
	ArrivalTime    string  `json:"arrivalTime"` // "2006-01-02 15:04:05" local, "" for origin
	DepartureTime  string  `json:"departureTime"`
	StopType       string  `json:"stopType"` // "", "NoStopOver", "CommercialStop", "NoncommercialStop"
	Platform       string  `json:"platform"` // roman, "" when none
	Track          int     `json:"track"`
	MaxSpeedKmh    int     `json:"maxSpeed"`
	Line           string  `json:"line"`
	KilometerMark  float64 `json:"mileage"`
	SupervisedBy   string  `json:"supervisedBy"`
	RadioChannels  string  `json:"radioChannels"`
}

// TimeOffset is the server clock offset answer.
type TimeOffset struct {
	UTCOffsetHours int `json:"utcOffset"`
}

// UserProfile is the platform profile of a player.
type UserProfile struct {
	SteamID   string `json:"steamId"`
	Name      string `json:"personaName"`
	AvatarURL string `json:"avatarUrl"`
}

// PolylinePoint is one vertex of a routing polyline.
type PolylinePoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
