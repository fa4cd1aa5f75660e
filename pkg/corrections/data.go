package corrections

func startDate(vacID int64, value, note string) Correction {
	return Correction{Kind: KindStartDate, VacID: vacID, Value: value, Note: note}
}

func endDate(vacID int64, value, note string) Correction {
	return Correction{Kind: KindEndDate, VacID: vacID, Value: value, Note: note}
}

func endReason(vacID int64, value, note string) Correction {
	return Correction{Kind: KindEndReason, VacID: vacID, Value: value, Note: note}
}

func serviceID(vacID int64, value, note string) Correction {
	return Correction{Kind: KindServiceID, VacID: vacID, Value: value, Note: note}
}

func relocate(vacID int64, note string) Correction {
	return Correction{Kind: KindRelocate, VacID: vacID, Note: note}
}

func remove(vacID int64, note string) Correction {
	return Correction{Kind: KindDelete, VacID: vacID, Note: note}
}

func assumed(c Correction) Correction {
	c.Assumption = true
	return c
}

// DefaultCorrections is the audited catalog of record-level fixes found
// through data exploration, in application order. Each note names the person
// the fix belongs to and the evidence for it; entries wrapped in assumed()
// could not be fully verified against the source database.
func DefaultCorrections() []Correction {
	return []Correction{
		// Found from wrong order in the placement start date.
		endDate(12916, "2009-11-09", "person 1638: wrong end year, checked against source database"),
		relocate(8539, "person 2664: short stay overlapping a continuous L4 placement"),
		relocate(54273, "person 2664: short stay overlapping a continuous L4 placement"),
		endDate(3752, "2013-06-26", "person 4488: end dates transposed between two vacancies"),
		endDate(32256, "2013-02-02", "person 4488: end dates transposed between two vacancies"),
		relocate(12509, "person 7379: one-week emergency stay before returning to the same service"),
		assumed(endDate(55420, "2011-06-20", "person 7387: placement never closed down; source says before 21/06/2011")),
		startDate(26848, "2012-06-07", "person 7702: backdated to the wrong date"),
		relocate(36399, "person 8490: 7-day L1 stay during a 344-day L2 placement"),
		assumed(endDate(17049, "2009-06-04", "person 8784: old L1 placement never closed down; source says before 05/06/2009")),
		assumed(startDate(16527, "2012-01-16", "person 8998: concurrent substance-use placements, dates unclear")),
		assumed(endDate(16527, "2012-06-15", "person 8998: concurrent substance-use placements, dates unclear")),
		relocate(49892, "person 11529: 7-day stay in another pathway during a YP placement"),
		endDate(6075, "2009-05-12", "person 12573: old L1 placement closed down on 12/05/2009 per source"),
		assumed(relocate(12835, "person 12923: short stay in another pathway during a long placement")),
		endDate(54968, "2013-06-26", "person 13374: wrong placement closed down, dates swapped back"),
		endDate(27659, "2013-04-15", "person 13374: wrong placement closed down, dates swapped back"),
		assumed(remove(9418, "person 14445: standalone L3 placement never closed, length unknown")),
		startDate(49017, "2013-09-22", "person 15517: backdated to the wrong date"),
		relocate(29973, "person 15517: concurrent 2-day stay before an unplanned move"),
		relocate(55736, "person 15943: 13-day stay in another service during a pathway placement"),
		endReason(21788, "INTERNAL TRANSFER", "person 16003: internal transfer mislabelled as a pathway move"),
		endReason(987, "INTERNAL TRANSFER", "person 16003: internal transfer mislabelled as a pathway move"),
		relocate(70249, "person 19446: 28-day stay while still in abstinent accommodation"),
		endReason(58116, "Moved to Local Authority Tenancy (Planned)", "person 20784: end reason on the wrong placement"),
		endReason(30580, "INTERNAL TRANSFER", "person 20784: end reason on the wrong placement"),

		// Found from wrong order in the vacancy filled date.
		endDate(50215, "2013-06-26", "person 23195: end dates transposed between two vacancies"),
		endDate(13495, "2013-06-09", "person 23195: end dates transposed between two vacancies"),
		endReason(26692, "INTERNAL TRANSFER", "person 23343: internal transfer mislabelled as a pathway move"),
		endDate(65045, "2013-03-11", "person 23488: end dates transposed between two vacancies"),
		endDate(19331, "2013-06-26", "person 23488: end dates transposed between two vacancies"),
		relocate(26400, "person 23805: 2-day stay in another pathway during a YP placement"),
		endDate(25384, "2014-09-24", "person 24418: move to lower support overlapped the previous service"),
		relocate(57075, "person 26621: 0-day placement while staying in another service"),
		assumed(relocate(65807, "person 27007: short-lived move with overlap down to a notice period")),
		endDate(66040, "2012-07-02", "quick L4-L1-L2 moves before the L4 placement was ended"),
		relocate(11719, "person 29329: 7-day L4 stay during a longer L3 placement"),
		assumed(endDate(63662, "2015-06-03", "person 30463: wrong end year; source notes a move on 04/06/2015")),
		relocate(7383, "person 31376: 33-day stay in another pathway near the end of a longer placement"),
		relocate(34239, "person 34558: placement inside a 2000-2020 stay in service 1"),
		relocate(14447, "person 34558: placement inside a 2000-2020 stay in service 1"),
		relocate(69708, "person 34558: placement inside a 2000-2020 stay in service 1"),
		startDate(63797, "2015-08-10", "person 3331: internal transfer backdated to the wrong year"),
		startDate(5302, "2019-07-24", "person 3771: internal transfer backdated by one day"),
		startDate(33092, "2021-03-24", "person 5137: internal transfer backdated by one day"),
		startDate(5148, "2011-10-17", "person 6231: backdated to just before the previous end date"),
		startDate(62439, "2013-08-05", "person 7482: one non-sequential internal transfer"),
		startDate(44340, "2022-03-10", "person 8211: one non-sequential internal transfer"),
		startDate(11097, "2021-07-26", "person 10422: internal transfer backdated by six months"),
		startDate(4256, "2012-12-10", "person 10732: one non-sequential internal transfer"),
		startDate(8236, "2020-05-20", "person 13327: internal transfer backdated by five days"),
		startDate(51777, "2013-01-02", "person 13946: one non-sequential internal transfer"),
		startDate(8109, "2015-12-18", "person 17992: internal transfer backdated by six days"),
		relocate(71328, "person 18219: 0-day placement during a lower-level placement"),
		startDate(1684, "2017-10-26", "person 19716: internal transfer backdated by seven days"),
		startDate(7322, "2012-06-14", "person 20536: backdated to the previous end date"),
		startDate(19337, "2022-04-20", "person 21995: internal transfer backdated by two days"),
		startDate(59776, "2014-06-30", "person 22885: internal transfer backdated by two weeks"),
		startDate(27342, "2015-12-08", "person 24832: internal transfer backdated by nine days"),
		relocate(64063, "person 28146: 34-day placement during a lower-level placement"),
		endDate(39437, "2013-02-04", "person 28664: quick internal transfer after an overlapping move"),
		relocate(53015, "person 30938: 18-day lower-level stay during a higher-level placement"),
		startDate(14504, "2011-03-15", "person 32997: backdated to the end of the previous placement"),

		// Found from multiple open end dates for the same person.
		endDate(66880, "2010-02-10", "persons 8753/28886 linked; 2009 placement closed before 11/02/2010 per source"),
		endDate(34200, "2025-04-03", "person 23105: old pathway vacancy left open after a move on 03/04"),

		// Found from duplicate start dates for the same person.
		endDate(2990, "2013-01-19", "person 3919: wrong vacancy closed; transfer precedes tenancy move"),
		startDate(68456, "2013-01-19", "person 3919: wrong vacancy closed; transfer precedes tenancy move"),
		endDate(68456, "2013-11-20", "person 3919: wrong vacancy closed; transfer precedes tenancy move"),
		startDate(27549, "2016-07-23", "person 6128: move between services backdated"),
		startDate(26848, "2012-06-25", "person 7702: move between services backdated"),
		endDate(31548, "2012-11-19", "person 11908: wrong vacancy closed; transfer precedes service move"),
		startDate(20057, "2012-11-19", "person 11908: wrong vacancy closed; transfer precedes service move"),
		endDate(20057, "2012-11-21", "person 11908: wrong vacancy closed; transfer precedes service move"),
		startDate(22407, "2023-03-30", "person 12923: short stay disrupted automatic un-backdating"),
		startDate(9132, "2020-12-17", "person 16444: move between services backdated"),
		startDate(45386, "2020-12-15", "person 17841: move between services backdated"),
		startDate(10282, "2019-02-22", "person 21691: move between services backdated"),
		startDate(26132, "2019-07-03", "person 21907: move between services backdated"),
		startDate(51362, "2019-01-04", "person 22161: move between services backdated"),
		startDate(52689, "2017-01-06", "person 24221: move between services backdated"),
		startDate(10792, "2013-06-26", "person 26621: short stay disrupted automatic un-backdating"),
		endDate(15542, "2013-05-05", "person 27157: wrong vacancy closed; transfer precedes service move"),
		startDate(17237, "2013-05-05", "person 27157: wrong vacancy closed; transfer precedes service move"),
		endDate(17237, "2013-06-26", "person 27157: wrong vacancy closed; transfer precedes service move"),
		startDate(56573, "2012-12-10", "person 28490: move between services backdated"),
		startDate(10775, "2019-01-30", "person 29596: unplanned move to a higher level backdated, verified"),
		endDate(27041, "2013-04-22", "person 33321: wrong vacancy closed; transfer precedes service move"),
		startDate(25184, "2013-04-22", "person 33321: wrong vacancy closed; transfer precedes service move"),
		endDate(25184, "2013-06-26", "person 33321: wrong vacancy closed; transfer precedes service move"),

		// Found from overlaps longer than 31 days.
		assumed(endDate(46535, "2015-12-09", "person 2800: late-entered move-out date or long notice period")),
		assumed(endDate(26299, "2011-08-17", "person 5368: backdating issue around a refurbishment decant")),
		endDate(13862, "2009-09-07", "person 10515: wrong end year; closed 07/09/2009 per source"),
		endDate(35097, "2010-11-28", "person 22324: wrong end year per source"),
		endDate(63190, "2017-06-05", "person 24201: previous vacancy closed down late per source"),

		// Found from placements contained within other placements.
		endDate(45172, "2012-11-16", "person 6482: overlap then a quick move; end set to the overlap start"),
		startDate(53108, "2012-11-21", "person 11908: move within pathways backdated"),
		endDate(65952, "2014-10-29", "person 21321: overlap then a quick move"),
		startDate(57922, "2014-03-23", "person 21374: transfer between services backdated"),
		endDate(16782, "2009-12-11", "person 23457: ordinary overlap"),
		endDate(35154, "2010-09-14", "person 27807: ordinary overlap"),

		// Found from gaps over 50 days after an internal transfer.
		startDate(44040, "2021-05-28", "person 7398: move backdated to the wrong year"),
		startDate(7458, "2021-09-27", "person 12078: wrong placement closed down"),
		endDate(7458, "2021-10-08", "person 12078: wrong placement closed down"),
		startDate(14480, "2021-08-28", "person 12078: wrong placement closed down"),
		endDate(14480, "2021-09-27", "person 12078: wrong placement closed down"),
		startDate(9302, "2020-01-22", "person 23444: wrong placement closed down"),
		endDate(9302, "2020-09-03", "person 23444: wrong placement closed down"),
		startDate(48006, "2020-09-03", "person 23444: wrong placement closed down"),
		endDate(48006, "2020-09-09", "person 23444: wrong placement closed down"),
		serviceID(71606, "105", "person 24194: floating-support service recorded under the wrong id"),
		assumed(startDate(13664, "2018-02-20", "person 31304: wrong placement closed and backdated to the wrong year")),
		assumed(endDate(13664, "2018-04-16", "person 31304: wrong placement closed and backdated to the wrong year")),
		assumed(startDate(39452, "2018-01-23", "person 31304: wrong placement closed and backdated to the wrong year")),
		assumed(endDate(39452, "2018-02-20", "person 31304: wrong placement closed and backdated to the wrong year")),
		assumed(startDate(69608, "2018-04-16", "person 31304: wrong placement closed and backdated to the wrong year")),
	}
}
