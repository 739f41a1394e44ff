package storage

// ============================================================================
// Seed Fixtures
// ============================================================================

// Topic ids are grouped by theme: 1xx sky and space, 2xx modern power,
// 3xx secret societies, 4xx nineteenth-century mysteries.

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

var seedUsers = []User{
	{
		ID:          1,
		Username:    "admin",
		Password:    "admin123",
		DisplayName: strPtr("Archivist"),
		Email:       "admin@rabbithole.local",
		AvatarURL:   strPtr("/avatars/archivist.png"),
		Role:        "admin",
	},
	{
		ID:          2,
		Username:    "reader",
		Password:    "reader123",
		DisplayName: strPtr("Curious Reader"),
		Email:       "reader@rabbithole.local",
		Role:        "user",
	},
}

var seedTopics = []Topic{
	{ID: 101, Title: "Chemtrails", Century: 20, FirstMentionedYear: intPtr(1996),
		ShortDescription: strPtr("The claim that aircraft condensation trails are chemical or biological agents sprayed deliberately.")},
	{ID: 102, Title: "Moon Landing Hoax", Century: 20, FirstMentionedYear: intPtr(1976),
		ShortDescription: strPtr("The belief that the Apollo landings were staged on a film set.")},
	{ID: 103, Title: "HAARP Weather Control", Century: 20, FirstMentionedYear: intPtr(1993),
		ShortDescription: strPtr("Claims that an Alaskan ionospheric research array can steer storms and earthquakes.")},
	{ID: 104, Title: "Area 51", Century: 20, FirstMentionedYear: intPtr(1989),
		ShortDescription: strPtr("A Nevada test site said to hide recovered alien craft.")},

	{ID: 201, Title: "Deep State", Century: 21, FirstMentionedYear: intPtr(2016),
		ShortDescription: strPtr("The idea that unelected officials secretly steer government policy.")},
	{ID: 202, Title: "5G Health Panic", Century: 21, FirstMentionedYear: intPtr(2019),
		ShortDescription: strPtr("Claims that fifth-generation mobile networks cause illness.")},
	{ID: 203, Title: "Flat Earth Revival", Century: 21, FirstMentionedYear: intPtr(2014),
		ShortDescription: strPtr("An internet-era resurgence of the belief that the Earth is a flat disc.")},
	{ID: 204, Title: "QAnon", Century: 21, FirstMentionedYear: intPtr(2017),
		ShortDescription: strPtr("An anonymous message-board movement alleging a hidden war against a secret cabal.")},

	{ID: 301, Title: "Illuminati", Century: 18, FirstMentionedYear: intPtr(1776),
		ShortDescription: strPtr("A Bavarian secret society said to have survived its suppression and to rule the world.")},
	{ID: 302, Title: "Freemason Revolution Plot", Century: 18, FirstMentionedYear: intPtr(1797),
		ShortDescription: strPtr("The accusation that Masonic lodges engineered the French Revolution.")},
	{ID: 303, Title: "The Lost Dauphin", Century: 18, FirstMentionedYear: intPtr(1795),
		ShortDescription: strPtr("Stories that Louis XVII escaped prison and lived on under another name.")},
	{ID: 304, Title: "Count of St. Germain", Century: 18, FirstMentionedYear: intPtr(1745),
		ShortDescription: strPtr("A courtier rumored to be immortal and privy to ancient secrets.")},

	{ID: 401, Title: "Lincoln Assassination Conspiracy", Century: 19, FirstMentionedYear: intPtr(1865),
		ShortDescription: strPtr("Theories that Booth acted for powers larger than the Confederate plotters.")},
	{ID: 402, Title: "Jack the Ripper Royal Cover-up", Century: 19, FirstMentionedYear: intPtr(1888),
		ShortDescription: strPtr("The claim that the Whitechapel murders were concealed to protect the Crown.")},
	{ID: 403, Title: "Shakespeare Authorship Question", Century: 19, FirstMentionedYear: intPtr(1857),
		ShortDescription: strPtr("The proposition that someone other than William Shakespeare wrote his plays.")},
	{ID: 404, Title: "Great Moon Hoax", Century: 19, FirstMentionedYear: intPtr(1835),
		ShortDescription: strPtr("A newspaper series reporting bat-winged humanoids living on the Moon.")},
}

var seedTopicContents = []TopicContent{
	{
		ID:      1,
		TopicID: 101,
		Content: "<h2>Origins</h2><p>The chemtrail theory spread after a 1996 US Air Force paper on weather modification " +
			"was misread as a confession. Believers point to long-lasting trails as proof of spraying.</p>",
		AIAnalysis: strPtr("Persistent contrails form when hot, humid exhaust meets cold air at altitude; " +
			"their duration tracks humidity, not payload."),
		FactCheck: strPtr("A 2016 survey of 77 atmospheric scientists found no evidence of a secret spraying program."),
	},
	{
		ID:         2,
		TopicID:    102,
		Content:    "<h2>Origins</h2><p>Bill Kaysing's 1976 pamphlet argued NASA lacked the technology to reach the Moon.</p>",
		AIAnalysis: strPtr("Retroreflectors left on the surface are still used by observatories today."),
		FactCheck:  strPtr("Independent tracking stations, including Soviet ones, followed the missions in real time."),
	},
	{
		ID:         3,
		TopicID:    201,
		Content:    "<h2>Usage</h2><p>Borrowed from Turkish politics, the term entered US discourse around 2016.</p>",
		AIAnalysis: strPtr("The concept blends ordinary bureaucratic inertia with claims of coordinated sabotage."),
	},
	{
		ID:        4,
		TopicID:   301,
		Content:   "<h2>History</h2><p>Adam Weishaupt founded the Order of the Illuminati on 1 May 1776; it was banned in 1785.</p>",
		FactCheck: strPtr("No documentary trace of the order exists after the Bavarian edicts of 1784 and 1785."),
	},
	{
		ID:      5,
		TopicID: 401,
		Content: "<h2>Background</h2><p>Early accusations blamed Confederate leaders and even members of Lincoln's own cabinet.</p>",
	},
}

var seedExpertOpinions = []ExpertOpinion{
	{ID: 1, TopicID: 101, ExpertName: "Dr. Elena Marsh", ExpertTitle: "Atmospheric Chemist",
		Opinion:   "Every sample I have analysed matches ordinary ice crystals and jet fuel combustion products.",
		AvatarURL: strPtr("/avatars/marsh.png")},
	{ID: 2, TopicID: 101, ExpertName: "Capt. Ray Doyle", ExpertTitle: "Commercial Pilot",
		Opinion: "There is no tank on my aircraft that could carry a spray payload."},
	{ID: 3, TopicID: 102, ExpertName: "Prof. Alan Reyes", ExpertTitle: "Planetary Geologist",
		Opinion:   "The returned lunar samples show features impossible to fabricate in 1969.",
		AvatarURL: strPtr("/avatars/reyes.png")},
	{ID: 4, TopicID: 201, ExpertName: "Dr. Nadia Kerr", ExpertTitle: "Political Scientist",
		Opinion: "Career civil servants do resist policy change, but through process, not conspiracy."},
	{ID: 5, TopicID: 301, ExpertName: "Dr. Gerhard Vogt", ExpertTitle: "Historian of Secret Societies",
		Opinion: "The Illuminati lasted less than a decade; the myth has lasted two centuries."},
}

var seedRelatedTopics = []RelatedTopic{
	{ID: 1, SourceTopicID: 101, TargetTopicID: 103},
	{ID: 2, SourceTopicID: 101, TargetTopicID: 301},
	{ID: 3, SourceTopicID: 103, TargetTopicID: 101},
	{ID: 4, SourceTopicID: 201, TargetTopicID: 204},
	{ID: 5, SourceTopicID: 201, TargetTopicID: 301},
	{ID: 6, SourceTopicID: 301, TargetTopicID: 302},
}

var seedGlossaryTerms = []GlossaryTerm{
	{ID: 1, Term: "Chemtrails", RelatedTopicID: intPtr(101),
		Definition: "Contrails alleged to contain chemicals sprayed for undisclosed purposes."},
	{ID: 2, Term: "Deep State", RelatedTopicID: intPtr(201),
		Definition: "A supposed network of officials operating outside elected control."},
	{ID: 3, Term: "Illuminati", RelatedTopicID: intPtr(301),
		Definition: "An eighteenth-century Bavarian secret society, later a byword for hidden world rulers."},
	{ID: 4, Term: "False Flag",
		Definition: "An act staged to look as if it were carried out by someone else."},
}

// loadFixtures inserts the seed records with their explicit ids.
// Caller must hold no lock; it runs during construction only.
func (s *MemStorage) loadFixtures() {
	now := s.now()

	for _, u := range seedUsers {
		u.CreatedAt = now
		s.users.put(u.ID, u)
	}
	for _, t := range seedTopics {
		t.CreatedAt = now
		t.UpdatedAt = now
		s.topics.put(t.ID, t)
	}
	for _, c := range seedTopicContents {
		c.CreatedAt = now
		c.UpdatedAt = now
		s.topicContents.put(c.ID, c)
	}
	for _, e := range seedExpertOpinions {
		e.CreatedAt = now
		s.expertOpinions.put(e.ID, e)
	}
	for _, r := range seedRelatedTopics {
		r.CreatedAt = now
		s.relatedTopics.put(r.ID, r)
	}
	for _, g := range seedGlossaryTerms {
		s.glossaryTerms.put(g.ID, g)
	}
}
