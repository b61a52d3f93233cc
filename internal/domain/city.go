package domain

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

type City struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Cities is the fixed catalog served by the application. The first entry is
// the city selected at startup.
var Cities = []City{
	{Name: "Paris", Location: Location{Latitude: 48.85661, Longitude: 2.351499, Zoom: 13}},
	{Name: "Cologne", Location: Location{Latitude: 50.938361, Longitude: 6.959974, Zoom: 13}},
	{Name: "Brussels", Location: Location{Latitude: 50.846557, Longitude: 4.351697, Zoom: 13}},
	{Name: "Amsterdam", Location: Location{Latitude: 52.37454, Longitude: 4.897976, Zoom: 13}},
	{Name: "Hamburg", Location: Location{Latitude: 53.550341, Longitude: 10.000654, Zoom: 13}},
	{Name: "Dusseldorf", Location: Location{Latitude: 51.225402, Longitude: 6.776314, Zoom: 13}},
}

// CityByName looks a city up in the fixed catalog.
func CityByName(name string) (City, bool) {
	for _, c := range Cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}
