package reading

// catalog holds the practice paragraphs. Order is stable: a paragraph's ID is
// its index here.
var catalog = [...]string{
	// Animals and Pets
	"I have a brown dog. His name is Max. Max likes to run and play. He can catch a ball.",
	"The cat sat on the mat. She is black and white. The cat likes to nap in the sun. She is very soft.",
	"We saw a big bear at the zoo. The bear was eating fish. He looked very happy. Bears are strong animals.",
	"My pet frog is green. He lives in a tank. The frog can jump very high. I feed him bugs.",
	"The bird made a nest in our tree. She laid three blue eggs. Soon the baby birds will hatch. Mom bird brings them food.",
	"Fish swim in the pond. Some are gold and some are red. They eat tiny bits of food. I like to watch the fish swim.",
	"A little ant walked on the ground. She found a big crumb. The ant carried it back to her home. Ants are very strong for their size.",
	"The cow lives on a farm. She eats grass all day. The cow gives us milk. She says moo.",
	"A pink pig plays in the mud. Pigs like to get dirty. The pig has a curly tail. She lives in a pen.",
	"My rabbit is white and fluffy. He hops around the yard. The rabbit eats carrots and lettuce. His name is Cotton.",

	// Family and Friends
	"Mom and I went to the park. We played on the swings. Then we had a picnic. It was a fun day.",
	"Dad made pancakes for breakfast. They were warm and sweet. I put syrup on top. We ate them all up.",
	"My sister Ann has a new bike. It is red and shiny. She can ride it very fast. I want to learn too.",
	"Ben is my best friend. We play together every day. We like to build with blocks. Ben is very nice.",
	"Grandma came to visit us. She made us cookies. The cookies had chocolate chips. We gave Grandma a big hug.",
	"My brother Tom plays soccer. He kicks the ball very well. His team won the game. We cheered for Tom.",
	"Sue and I are in the same class. We sit next to each other. Sue helps me with my work. She is a good friend.",
	"Uncle Jim took us fishing. We sat by the lake. I caught a small fish. Uncle Jim said I did a great job.",

	// School and Learning
	"I go to school on the bus. The bus is big and yellow. My friends ride with me. We sing songs on the way.",
	"Our teacher reads us stories. I like the one about the mouse. The mouse was very clever. We all clapped at the end.",
	"At recess we play tag. I run as fast as I can. Sometimes I am it. Recess is my favorite part of school.",
	"We learned about shapes today. A circle is round. A square has four sides. I can draw all the shapes.",
	"In art class we used paint. I made a picture of a rainbow. It had red, blue, and yellow. My teacher hung it on the wall.",
	"We sing songs in music class. Today we sang about stars. The teacher played the piano. Music class is so much fun.",
	"I can count to one hundred. Numbers are everywhere. We use them to add and subtract. Math helps us solve problems.",
	"The library has so many books. I picked one about dinosaurs. The librarian helped me find it. I will read it tonight.",

	// Nature and Outdoors
	"The sun is bright and warm. It helps the plants grow. We need the sun every day. The sun makes me happy.",
	"Rain falls from the clouds. The drops make puddles. I like to splash in them. Rain helps the flowers bloom.",
	"In fall the leaves turn red and gold. They fall from the trees. I like to jump in leaf piles. Fall is a pretty season.",
	"Winter brings cold and snow. Snowflakes are white and soft. We make snowmen in the yard. I wear my warm coat.",
	"Spring is here at last. The flowers are blooming. Birds build nests in the trees. Everything is green again.",
	"Summer is hot and sunny. We go swimming at the pool. I like to eat ice cream. Summer vacation is the best.",
	"At the beach I build sand castles. The waves crash on the shore. I find pretty shells. The ocean is big and blue.",
	"We went hiking on a trail. I saw a squirrel in a tree. The woods were quiet and peaceful. Nature is beautiful.",
	"The moon comes out at night. It glows in the dark sky. Stars twinkle all around it. I make a wish on a star.",
	"Butterflies fly from flower to flower. They have colorful wings. I saw a yellow one today. Butterflies are so pretty.",

	// Food and Meals
	"For lunch I had a sandwich. It had peanut butter and jelly. I also ate an apple. My lunch was yummy.",
	"We made pizza for dinner. I helped put cheese on top. The pizza smelled so good. We all had two slices.",
	"Ice cream is my favorite treat. I like chocolate the best. It is cold and sweet. Sometimes I get sprinkles on top.",
	"Apples grow on trees. They can be red or green. Apples are crunchy and sweet. They are good for you.",
	"I helped Mom bake cookies. We mixed flour and sugar. The kitchen smelled wonderful. We shared the cookies with our neighbors.",
	"At the farmer's market we bought fresh corn. Mom cooked it for dinner. The corn was yellow and tasty. I ate three pieces.",
	"Carrots are orange vegetables. Rabbits love to eat them. I like carrots with ranch dip. They make a good snack.",
	"We picked strawberries at the farm. The berries were red and ripe. We filled our basket full. Later we made strawberry jam.",

	// Home and Daily Life
	"Every morning I brush my teeth. I use my blue toothbrush. Brushing keeps my teeth clean. I smile in the mirror.",
	"My room has a bed and a desk. My toys are in a big box. I have posters on the wall. I like my cozy room.",
	"We have a garden in our backyard. Tomatoes grow on the vines. We also planted flowers. I water them every day.",
	"I help set the table for dinner. I put out forks and spoons. Everyone sits together to eat. We talk about our day.",
	"Bath time is fun. I play with my rubber duck. Bubbles float in the water. I get clean and smell good.",
	"Before bed I put on my pajamas. They have stars on them. Mom reads me a story. Then I go to sleep.",
	"Saturday is cleaning day. I help pick up my toys. We vacuum the carpet. A clean house feels nice.",
	"We have a small garden shed. Dad keeps his tools there. I like to help him fix things. We work together as a team.",

	// Adventures and Activities
	"We went to the zoo today. I saw lions and tigers. The monkeys were swinging on ropes. My favorite was the elephant.",
	"At the playground I went down the slide. I climbed up the ladder first. It was fast and fun. I went down ten times.",
	"We flew a kite in the park. The kite was shaped like a bird. It soared high in the sky. The wind made it dance.",
	"I learned to ride my bike. At first I wobbled a lot. Dad helped me practice. Now I can ride all by myself.",
	"We went camping in the woods. We slept in a tent. At night we roasted marshmallows. I saw fireflies glowing.",
	"The circus came to town. We saw acrobats and clowns. A lady walked on a high wire. The show was amazing.",
	"I joined a soccer team. We wear blue uniforms. I practice kicking the ball. Our first game is next week.",
	"We visited the fire station. A firefighter showed us the big red truck. He let me try on his helmet. Firefighters are heroes.",

	// Transportation
	"The train goes down the track. It makes a loud whistle sound. People ride the train to work. Trains can go very fast.",
	"We took a plane to visit Grandpa. The plane flew high in the clouds. I looked out the window. Everything looked tiny below.",
	"Our car is blue. We drive it to the store. I sit in the back seat with my seat belt on. Cars help us get places.",
	"I saw a big boat on the lake. It had white sails. The wind pushed it along. Boats float on the water.",
	"The school bus picks me up each morning. The driver waves hello. I sit with my friend. The bus takes us to school safely.",

	// Seasons and Weather
	"Today the sky is clear and blue. Not a single cloud in sight. The sun is shining bright. It is a perfect day to play outside.",
	"Thunder rumbled in the sky. Lightning flashed so bright. We stayed inside where it was safe. The storm passed after an hour.",
	"Frost covered the grass this morning. Everything looked white and sparkly. My breath made little clouds. Winter is almost here.",
	"The wind blew hard today. Leaves swirled in the air. My hat almost flew away. I held on tight to it.",

	// Imagination and Play
	"I built a fort with blankets. It covered two chairs. Inside was my secret hideout. I pretended to be a knight.",
	"My toy cars race around the track. The red one is the fastest. I make engine sounds. Playing cars is lots of fun.",
	"I dressed up like a doctor. I checked my teddy bear's heartbeat. He needed a bandage. Now he feels all better.",
	"We put on a puppet show. I made the puppets talk and sing. My family watched and clapped. They said it was wonderful.",
	"With my blocks I built a tall tower. It reached almost to my chin. I used all the colors. Then I knocked it down and started again.",

	// Kindness and Feelings
	"I helped my friend when she fell. She scraped her knee. I got a tissue for her. Being kind makes me feel good.",
	"Today I felt really happy. The sun was shining. I played with my best friend. Smiling makes the day better.",
	"When I am sad, Mom gives me a hug. She tells me it will be okay. Her hugs make me feel safe. I love my mom.",
	"I shared my crayons with Tim. He did not have any. Tim was so thankful. Sharing is caring.",
	"My little brother was scared of the dark. I held his hand. I told him I would protect him. Now he feels brave.",
}
