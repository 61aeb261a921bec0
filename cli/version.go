package cli

var versions = "cvssbase version 1.0.0"
