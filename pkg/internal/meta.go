package pkg

const AppVersion = "2.1.0"
