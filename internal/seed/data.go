package seed

import "github.com/kibisports/matchdesk/internal/domain/model"

func demoAthletes() []model.Asset {
	return []model.Asset{
		{Category: model.CategoryAthlete, Name: "Marcus Johnson", Sports: []string{"basketball"}, City: "Chicago", State: "Illinois", Tier: "regional", Featured: true, Bio: "Point guard, 50k followers", SocialFollowers: 50000},
		{Category: model.CategoryAthlete, Name: "Sofia Rivera", Sports: []string{"soccer"}, City: "Los Angeles", State: "California", Tier: "national", Featured: true, Bio: "Forward, US Youth National Team", SocialFollowers: 120000},
		{Category: model.CategoryAthlete, Name: "Tyler Brooks", Sports: []string{"football"}, City: "Houston", State: "Texas", Tier: "local", Bio: "High school QB, rising star", SocialFollowers: 8000, IncompatibleCategories: []string{"ALCOHOL", "TOBACCO"}},
		{Category: model.CategoryAthlete, Name: "Aisha Washington", Sports: []string{"track and field"}, City: "Atlanta", State: "Georgia", Tier: "regional", Bio: "100m specialist", SocialFollowers: 22000},
		{Category: model.CategoryAthlete, Name: "Jake Nguyen", Sports: []string{"baseball"}, City: "New York", State: "New York", Tier: "local", Bio: "AAA pitcher", SocialFollowers: 5000},
		{Category: model.CategoryAthlete, Name: "Elena Vasquez", Sports: []string{"volleyball"}, City: "Miami", State: "Florida", Tier: "regional", Featured: true, Bio: "Beach volleyball pro", SocialFollowers: 35000},
		{Category: model.CategoryAthlete, Name: "Darius King", Sports: []string{"basketball"}, City: "Los Angeles", State: "California", Tier: "national", Featured: true, Bio: "G-League standout", SocialFollowers: 200000},
		{Category: model.CategoryAthlete, Name: "Priya Patel", Sports: []string{"tennis"}, City: "Chicago", State: "Illinois", Tier: "regional", Bio: "ITF ranked player", SocialFollowers: 18000},
		{Category: model.CategoryAthlete, Name: "Carlos Mendez", Sports: []string{"soccer"}, City: "Houston", State: "Texas", Tier: "local", Bio: "Amateur league star", SocialFollowers: 3500},
		{Category: model.CategoryAthlete, Name: "Zoe Campbell", Sports: []string{"swimming"}, City: "Phoenix", State: "Arizona", Tier: "regional", Featured: true, Bio: "State champion swimmer", SocialFollowers: 14000},
	}
}

func demoLeagues() []model.Asset {
	return []model.Asset{
		{Category: model.CategoryLeague, Name: "Chicago Amateur Basketball League", Sports: []string{"basketball"}, City: "Chicago", State: "Illinois", Season: "Fall/Winter", Level: "amateur", Featured: true},
		{Category: model.CategoryLeague, Name: "LA Soccer Premier League", Sports: []string{"soccer"}, City: "Los Angeles", State: "California", Season: "Year-round", Level: "semi-pro", Featured: true},
		{Category: model.CategoryLeague, Name: "Texas Youth Football Conference", Sports: []string{"football"}, City: "Houston", State: "Texas", Season: "Fall", Level: "amateur", IncompatibleCategories: []string{"ALCOHOL", "GAMBLING"}},
		{Category: model.CategoryLeague, Name: "Southeast Track Series", Sports: []string{"track and field"}, City: "Atlanta", State: "Georgia", Season: "Spring/Summer", Level: "amateur"},
		{Category: model.CategoryLeague, Name: "NYC Metro Baseball League", Sports: []string{"baseball"}, City: "New York", State: "New York", Season: "Spring/Summer", Level: "semi-pro", Featured: true},
		{Category: model.CategoryLeague, Name: "Miami Beach Volleyball Tour", Sports: []string{"volleyball"}, City: "Miami", State: "Florida", Season: "Year-round", Level: "semi-pro", Featured: true},
		{Category: model.CategoryLeague, Name: "Phoenix Swim Series", Sports: []string{"swimming"}, City: "Phoenix", State: "Arizona", Season: "Winter/Spring", Level: "amateur"},
		{Category: model.CategoryLeague, Name: "Windy City Tennis Open", Sports: []string{"tennis"}, City: "Chicago", State: "Illinois", Season: "Summer", Level: "amateur"},
		{Category: model.CategoryLeague, Name: "SoCal Indoor Soccer League", Sports: []string{"soccer"}, City: "Los Angeles", State: "California", Season: "Year-round", Level: "amateur"},
		{Category: model.CategoryLeague, Name: "Houston Flag Football League", Sports: []string{"flag football"}, City: "Houston", State: "Texas", Season: "Fall", Level: "amateur"},
	}
}

func demoVenues() []model.Asset {
	return []model.Asset{
		{Category: model.CategoryVenue, Name: "United Center", VenueType: "arena", City: "Chicago", State: "Illinois", Sports: []string{"basketball", "hockey"}, Capacity: 20000, Featured: true},
		{Category: model.CategoryVenue, Name: "SoFi Stadium", VenueType: "stadium", City: "Los Angeles", State: "California", Sports: []string{"football", "soccer"}, Capacity: 70000, Featured: true},
		{Category: model.CategoryVenue, Name: "NRG Stadium", VenueType: "stadium", City: "Houston", State: "Texas", Sports: []string{"football", "soccer"}, Capacity: 71000, Featured: true},
		{Category: model.CategoryVenue, Name: "State Farm Arena", VenueType: "arena", City: "Atlanta", State: "Georgia", Sports: []string{"basketball"}, Capacity: 21000},
		{Category: model.CategoryVenue, Name: "Yankee Stadium", VenueType: "stadium", City: "New York", State: "New York", Sports: []string{"baseball", "soccer"}, Capacity: 54000, Featured: true},
		{Category: model.CategoryVenue, Name: "Hard Rock Stadium", VenueType: "stadium", City: "Miami", State: "Florida", Sports: []string{"football", "soccer", "volleyball"}, Capacity: 65000, Featured: true},
		{Category: model.CategoryVenue, Name: "Chicago Sports Complex", VenueType: "complex", City: "Chicago", State: "Illinois", Sports: []string{"basketball", "volleyball", "tennis", "badminton"}, Capacity: 5000},
		{Category: model.CategoryVenue, Name: "LA Fitness Sports Club", VenueType: "gym", City: "Los Angeles", State: "California", Sports: []string{"basketball", "swimming", "fitness"}, Capacity: 500},
		{Category: model.CategoryVenue, Name: "Phoenix Aquatic Center", VenueType: "complex", City: "Phoenix", State: "Arizona", Sports: []string{"swimming", "diving", "water polo"}, Capacity: 3000, Featured: true},
		{Category: model.CategoryVenue, Name: "Miami Beach Volleyball Courts", VenueType: "field", City: "Miami", State: "Florida", Sports: []string{"volleyball", "beach soccer"}, Capacity: 2000},
	}
}
