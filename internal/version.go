package internal

// Version is the current us8kjams release
const Version = "1.0.0"
