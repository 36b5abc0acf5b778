package store

// DefaultRecord is written when no parameter file exists yet
const DefaultRecord = `59.016 0.091 116.189 0.02 0.23 0.012 149.18 0.04
160.247 0.091 551.229 1.025 0.01 0.5 0.124 799.016
146.885 0.024 100.04 0.04 1 17.213 0.027
876.64 1585.66 15.164 0.095 0.01 0.09 3 0.034 953.197 0.018
322.476 0.015 3.42 120.651 0.05 2.911 0.5 0.02 742.684
281.967 0.03 0.099 879.098 0.02 0.042 0.008 0.279
295.492 745.902 0.066 15.123 0.234 0.049 0 1197.95
30.098 0.088 0.075 0.033 1.785 0.088 0.583 0.368
176.287 0.065 0.733 0.169 0.388 105.537 0.1 0.2
880.782 280.13 0.01 0.912 0
0.489 0.084 8990.23 5678.83 0.759 0.583
`
