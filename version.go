package opensilex

const VERSION = "0.1.0"
