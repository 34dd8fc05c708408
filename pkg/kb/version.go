package kb

// Version is the kbase release version.
const Version = "v0.1.0"
