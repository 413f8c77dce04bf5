package event

// EventSchemaVersion is stamped on every event built by New
const EventSchemaVersion = "1.0"

const handlerErrorFormat = "handling %s: %w"
