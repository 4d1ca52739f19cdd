package constvars

// Hour and minute are captured separately so the minute can be judged first.
const RegexBookingTime = `^(\d{1,2}):(\d{2})$`
